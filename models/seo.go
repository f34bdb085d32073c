package models

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title           string   // Page title
	Description     string   // Meta description (150-160 chars recommended)
	Keywords        []string // Meta keywords
	Canonical       string   // Canonical URL
	SiteName        string   // Open Graph site name
	OGTitle         string   // Open Graph title (defaults to Title if empty)
	OGDesc          string   // Open Graph description (defaults to Description if empty)
	OGImage         string   // Open Graph image URL
	OGImageAlt      string
	OGType          string // Open Graph type (website, article, etc.)
	Locale          string // Open Graph locale, e.g. en_US
	TwitterCard     string // Twitter card type (summary, summary_large_image)
	TwitterHandle   string // @site and @creator
	ThemeColor      string
	NoIndex         bool // If true, adds noindex directive
	Author          string
	Category        string
	MaxImagePreview string // googlebot max-image-preview
}

// DefaultSEO returns SEO with sensible defaults
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:           title,
		Description:     description,
		OGType:          "website",
		Locale:          "en_US",
		TwitterCard:     "summary_large_image",
		MaxImagePreview: "large",
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithOGImage sets the Open Graph image and its alt text
func (s *SEO) WithOGImage(imageURL, alt string) *SEO {
	s.OGImage = imageURL
	s.OGImageAlt = alt
	return s
}

// WithKeywords sets meta keywords
func (s *SEO) WithKeywords(keywords ...string) *SEO {
	s.Keywords = keywords
	return s
}

// WithNoIndex sets the noindex directive
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// GetOGTitle returns OGTitle or falls back to Title
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}

// RobotsDirective renders the robots meta content
func (s *SEO) RobotsDirective() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	directive := "index, follow"
	if s.MaxImagePreview != "" {
		directive += ", max-image-preview:" + s.MaxImagePreview + ", max-snippet:-1, max-video-preview:-1"
	}
	return directive
}
