package components

import (
	"digital_analytics_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CapabilityMarquee scrolls the capability list horizontally. The track is
// rendered twice so static/js/marquee.js and the CSS animation can loop it seamlessly.
func CapabilityMarquee(items []models.Capability) g.Node {
	return Div(
		Class("relative mt-14"),
		Role("region"),
		Aria("label", "Our core capabilities"),
		H2(Class("sr-only"), g.Text("AI Solutions & Automation")),
		Div(Class("marquee-fade marquee-fade-left")),
		Div(Class("marquee-fade marquee-fade-right")),
		Div(
			Class("marquee"),
			Data("marquee", ""),
			Data("pause-on-hover", "true"),
			marqueeTrack(items, false),
			marqueeTrack(items, true),
		),
	)
}

func marqueeTrack(items []models.Capability, duplicate bool) g.Node {
	nodes := make([]g.Node, 0, len(items)+2)
	nodes = append(nodes, Class("marquee-track"))
	if duplicate {
		nodes = append(nodes, Aria("hidden", "true"))
	}
	for _, c := range items {
		nodes = append(nodes, Div(
			Class("group mx-1 flex-shrink-0 md:mx-4"),
			Div(
				Class("flex h-16 flex-col items-center justify-center space-y-2 p-4"),
				Div(Class("rounded-lg bg-gray-50 p-2 transition-colors group-hover:bg-gray-100 "+c.Color), LucideIcon(c.Icon, "h-6 w-6")),
				Span(Class("text-xs font-medium text-gray-600 group-hover:text-gray-900"), g.Text(c.Name)),
			),
		))
	}
	return Div(nodes...)
}
