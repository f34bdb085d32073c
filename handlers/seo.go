package handlers

import (
	"digital_analytics_site/config"
	"digital_analytics_site/models"
)

const (
	landingTitle       = "Digital Analytics - AI-Powered Business Solutions"
	landingDescription = "Boost your business efficiency with our AI powered solutions. We specialize in AI Sales Bots, Virtual Assistants for customer support, end to end business automation, and seamless AI integration with ERP, CRM, and HRMS systems. Unlock smarter workflows, 24/7 customer engagement, and automated growth with our custom AI automation services."
)

var landingKeywords = []string{
	"AI", "Artificial Intelligence", "Sales Bots", "Business Automation",
	"ERP", "CRM", "HRMS", "Virtual Assistants", "Customer Support",
}

// LandingSEO returns the landing page metadata for the configured site URL
func LandingSEO(cfg *config.Config, site *models.SiteContent) *models.SEO {
	brand := "Digital Analytics"
	if site != nil && site.Brand.Name != "" {
		brand = site.Brand.Name
	}

	seo := models.DefaultSEO(landingTitle, landingDescription).
		WithCanonical(cfg.AppURL+"/").
		WithOGImage(cfg.SocialImageURL(), brand+" - AI-Powered Business Solutions Banner").
		WithKeywords(landingKeywords...)
	seo.SiteName = brand
	seo.Author = brand
	seo.TwitterHandle = "@aiaex"
	seo.ThemeColor = "#000000"
	seo.Category = "technology"
	return seo
}
