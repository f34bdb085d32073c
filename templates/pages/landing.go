// Package pages assembles full documents from components and partials
package pages

import (
	"fmt"
	"time"

	"digital_analytics_site/models"
	"digital_analytics_site/templates/components"
	"digital_analytics_site/templates/partials"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingProps is everything the landing page renders from
type LandingProps struct {
	Site      *models.SiteContent
	SEO       *models.SEO
	Form      partials.ContactFormProps
	Motion    SectionTriggers
	Nonce     string
	Turnstile bool
	Now       time.Time
}

// Landing renders the single scrolling page
func Landing(p LandingProps) g.Node {
	site := p.Site
	if p.Now.IsZero() {
		p.Now = time.Now()
	}

	return components.Layout(
		components.PageConfig{SEO: p.SEO, Nonce: p.Nonce, Turnstile: p.Turnstile},
		components.Navbar(site.Brand, site.Nav),
		Main(
			ID("main-content"),
			Class("pt-16"),
			heroSection(site.Hero, p.Motion),
			caseStudiesSection(site.CaseStudies, p.Motion),
			processSection(site.Process, p.Motion),
			contactSection(site.Contact, p.Form, p.Motion),
		),
		components.SiteFooter(site.Brand, site.Footer, p.Now),
	)
}

func heroSection(h models.Hero, m SectionTriggers) g.Node {
	return Section(
		ID("hero"),
		Class("relative overflow-hidden px-5 pt-20 pb-16 md:pt-28"),
		Aria("labelledby", "hero-heading"),
		components.SectionHeading("hero-heading", h.Heading, components.Level1),
		Div(
			Class("mt-8 flex flex-col items-center justify-center gap-3 sm:flex-row"),
			g.If(h.PrimaryCTA.Href != "", components.NavLink(h.PrimaryCTA, "rounded-md bg-primary px-6 py-3 text-sm font-medium text-white hover:bg-primary/90")),
			g.If(h.SecondaryCTA.Href != "", components.NavLink(h.SecondaryCTA, "rounded-md border border-gray-200 bg-white px-6 py-3 text-sm font-medium text-gray-900 hover:bg-gray-100")),
		),
		components.CapabilityMarquee(h.Capabilities),
		components.ServiceCarousel("services-section", h.Services, h.AutoplayMS),
		components.MotionManifest(m.Hero),
	)
}

func caseStudiesSection(cs models.CaseStudies, m SectionTriggers) g.Node {
	items := make([]g.Node, 0, len(cs.Items))
	for i, item := range cs.Items {
		features := make([]g.Node, 0, len(item.Features))
		for _, f := range item.Features {
			features = append(features, Li(
				Class("flex items-start gap-2 text-sm text-gray-700"),
				components.LucideIcon("check", "mt-0.5 h-4 w-4 text-green-600"),
				Span(g.Text(f)),
			))
		}

		// Alternate the image side on wide screens
		contentOrder, imageOrder := "lg:order-1", "lg:order-2"
		if i%2 == 1 {
			contentOrder, imageOrder = "lg:order-2", "lg:order-1"
		}

		items = append(items, Article(
			Class("grid items-center gap-10 lg:grid-cols-2"),
			Aria("labelledby", fmt.Sprintf("capability-%d-title", i)),
			Div(
				ID(fmt.Sprintf("capability-%d-content", i)),
				Class("space-y-4 "+contentOrder),
				Div(Class("flex items-center gap-3"),
					components.LucideIcon(item.Icon, "h-8 w-8 "+item.Color),
					H3(ID(fmt.Sprintf("capability-%d-title", i)), Class("text-2xl font-semibold text-gray-900"), g.Text(item.Title)),
				),
				P(Class("text-gray-600"), g.Text(item.Description)),
				Ul(Class("space-y-2"), g.Group(features)),
			),
			Div(
				ID(fmt.Sprintf("capability-%d-image", i)),
				Class(imageOrder),
				g.If(item.Image != "",
					Img(Src(item.Image), Alt(item.Title), Width("800"), Height("600"),
						Class("w-full rounded-xl object-cover shadow-sm"), g.Attr("loading", "lazy")),
				),
			),
		))
	}

	return Section(
		ID("capabilities"),
		Class("bg-white px-5 py-20 md:py-28"),
		Aria("labelledby", "capabilities-heading"),
		components.SectionHeading("capabilities-heading", cs.Heading, components.Level2),
		Div(Class("mx-auto mt-16 max-w-6xl space-y-24"), g.Group(items)),
		components.MotionManifest(m.CaseStudies),
	)
}

func processSection(p models.Process, m SectionTriggers) g.Node {
	steps := make([]g.Node, 0, len(p.Steps))
	for i, s := range p.Steps {
		steps = append(steps, Li(
			Class("rounded-xl border border-gray-200 bg-white p-6 space-y-3"),
			Div(Class("flex items-center justify-between"),
				components.LucideIcon(s.Icon, "h-6 w-6 text-blue-600"),
				Span(Class("text-xs font-medium text-gray-400"), g.Text(fmt.Sprintf("%02d", i+1))),
			),
			H3(Class("text-lg font-semibold text-gray-900"), g.Text(s.Title)),
			P(Class("text-sm text-gray-600"), g.Text(s.Description)),
		))
	}

	return Section(
		ID("process"),
		Class("px-5 py-20 md:py-28"),
		Aria("labelledby", "process-heading"),
		components.SectionHeading("process-heading", p.Heading, components.Level2),
		Ol(ID("process-steps"), Class("mx-auto mt-14 grid max-w-6xl gap-6 md:grid-cols-2 lg:grid-cols-4"), g.Group(steps)),
		components.MotionManifest(m.Process),
	)
}

func contactSection(c models.ContactBlock, form partials.ContactFormProps, m SectionTriggers) g.Node {
	if form.TermsURL == "" {
		form.TermsURL = c.TermsURL
	}

	var background g.Node
	if c.Background != "" {
		background = Img(Src(c.Background), Alt(""), Aria("hidden", "true"),
			Class("absolute inset-0 h-full w-full object-cover opacity-20"), g.Attr("loading", "lazy"))
	}

	return Section(
		ID("contact"),
		Class("bg-white px-5 py-20 md:py-28"),
		Aria("labelledby", "contact-heading"),
		components.SectionHeading("contact-heading", c.Heading, components.Level2),
		Div(
			Class("mx-auto mt-14 grid max-w-6xl gap-10 lg:grid-cols-2"),
			Div(
				Class("relative overflow-hidden rounded-2xl bg-gray-900 p-8 text-white md:p-12"),
				background,
				components.GridPattern(12, 12, 40, "absolute inset-0 opacity-10"),
				Div(
					Class("relative flex h-full flex-col justify-between gap-10"),
					g.El("blockquote", Class("text-lg leading-relaxed md:text-xl"), g.Text(c.Quote)),
					Div(
						Class("space-y-1"),
						P(Class("font-semibold"), g.Text(c.Prompt)),
						P(Class("text-sm text-gray-300"), g.Text(c.PromptNote)),
					),
				),
			),
			Div(
				ID("contact-form-wrapper"),
				Class("rounded-2xl border border-gray-200 bg-gray-50 p-6 md:p-10"),
				H3(ID("contact-form-title"), Class("sr-only"), g.Text("Contact form")),
				P(ID("contact-form-description"), Class("sr-only"), g.Text("Send us your name, email and a message.")),
				partials.ContactForm(form),
			),
		),
		components.MotionManifest(m.Contact),
	)
}
