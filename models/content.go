package models

// SiteContent is everything the landing page renders, loaded from YAML
type SiteContent struct {
	Brand       Brand        `yaml:"brand"`
	Nav         []Link       `yaml:"nav"`
	Hero        Hero         `yaml:"hero"`
	CaseStudies CaseStudies  `yaml:"case_studies"`
	Process     Process      `yaml:"process"`
	Contact     ContactBlock `yaml:"contact"`
	Footer      Footer       `yaml:"footer"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Email   string `yaml:"email"`
}

type Link struct {
	Label    string `yaml:"label"`
	Href     string `yaml:"href"`
	External bool   `yaml:"external"`
}

// Heading is the badge/heading/description trio every section opens with
type Heading struct {
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type Hero struct {
	Heading      Heading       `yaml:"heading"`
	PrimaryCTA   Link          `yaml:"primary_cta"`
	SecondaryCTA Link          `yaml:"secondary_cta"`
	Capabilities []Capability  `yaml:"capabilities"`
	Services     []ServiceCard `yaml:"services"`
	// AutoplayMS is the carousel autoplay interval
	AutoplayMS int `yaml:"autoplay_ms"`
}

// Capability is one marquee entry
type Capability struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// ServiceCard is one featured-service carousel slide
type ServiceCard struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Color       string   `yaml:"color"`
	Features    []string `yaml:"features"`
}

type CaseStudies struct {
	Heading Heading     `yaml:"heading"`
	Items   []CaseStudy `yaml:"items"`
}

type CaseStudy struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Color       string   `yaml:"color"`
	Features    []string `yaml:"features"`
	Image       string   `yaml:"image"`
}

type Process struct {
	Heading Heading       `yaml:"heading"`
	Steps   []ProcessStep `yaml:"steps"`
}

type ProcessStep struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type ContactBlock struct {
	Heading    Heading `yaml:"heading"`
	Quote      string  `yaml:"quote"`
	Prompt     string  `yaml:"prompt"`
	PromptNote string  `yaml:"prompt_note"`
	Background string  `yaml:"background"`
	TermsURL   string  `yaml:"terms_url"`
}

type Footer struct {
	Columns   []FooterColumn `yaml:"columns"`
	Copyright string         `yaml:"copyright"`
	Social    []Link         `yaml:"social"`
}

type FooterColumn struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}
