package components

import (
	"digital_analytics_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeadingLevel is the element a section heading renders as
type HeadingLevel int

const (
	Level1 HeadingLevel = iota + 1
	Level2
)

// SectionHeading renders the badge, heading and description block every section opens with.
// The wrapper gets id+"-block" so scroll bindings can target it; the heading itself gets id.
func SectionHeading(id string, h models.Heading, level HeadingLevel) g.Node {
	titleClass := "text-3xl md:text-4xl font-semibold tracking-tight text-gray-900 leading-tight"
	title := H2
	if level == Level1 {
		titleClass = "text-4xl md:text-6xl font-semibold tracking-tight text-gray-900 leading-tight md:mx-auto md:w-2/3"
		title = H1
	}

	return Div(
		ID(id+"-block"),
		Class("section-heading mx-auto max-w-3xl space-y-4 text-center"),
		g.If(h.Badge != "",
			Span(
				Class("inline-flex items-center gap-2 rounded-full border border-gray-200 bg-white px-3 py-1 text-xs font-medium text-gray-700"),
				LucideIcon(h.Icon, "h-3.5 w-3.5"),
				g.Text(h.Badge),
			),
		),
		title(ID(id), Class(titleClass), g.Text(h.Title)),
		g.If(h.Description != "", P(Class("text-base md:text-lg text-gray-600"), g.Text(h.Description))),
	)
}
