package components

import (
	"digital_analytics_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Navbar is the fixed top bar
func Navbar(brand models.Brand, links []models.Link) g.Node {
	items := make([]g.Node, 0, len(links))
	for _, l := range links {
		items = append(items, Li(NavLink(l, "text-sm font-medium text-gray-600 hover:text-gray-900 transition-colors")))
	}

	return Header(
		Class("fixed inset-x-0 top-0 z-50 border-b border-gray-200/60 bg-gray-50/80 backdrop-blur"),
		Nav(
			ID("main-navigation"),
			Aria("label", "Main navigation"),
			Class("mx-auto flex h-16 max-w-6xl items-center justify-between px-5"),
			A(
				Href("/"),
				Class("flex items-center gap-2 font-semibold text-gray-900"),
				LucideIcon("bar-chart-3", "h-6 w-6 text-blue-600"),
				g.Text(brand.Name),
			),
			Ul(Class("hidden items-center gap-6 md:flex"), g.Group(items)),
		),
	)
}

// NavLink renders a link, opening external ones in a new tab
func NavLink(l models.Link, class string) g.Node {
	if l.External {
		return A(Href(l.Href), Class(class), Target("_blank"), Rel("noopener noreferrer"), g.Text(l.Label))
	}
	return A(Href(l.Href), Class(class), g.Text(l.Label))
}
