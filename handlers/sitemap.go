package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the landing page, the only crawlable URL
func (s *Site) GetSitemapHandler(c echo.Context) error {
	cfg := getConfig(c)

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{Loc: cfg.AppURL + "/", LastMod: s.now().UTC().Format("2006-01-02"), ChangeFreq: "weekly", Priority: 1.0},
		},
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler allows everything except the API and points crawlers at the sitemap
func RobotsHandler(c echo.Context) error {
	cfg := getConfig(c)
	body := "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: " + cfg.AppURL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

// HealthHandler reports liveness and whether content is loaded
func (s *Site) HealthHandler(c echo.Context) error {
	if s.Content == nil || s.Content.Current() == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
