package components

import (
	"fmt"
	"time"

	"digital_analytics_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteFooter renders the link columns and copyright line
func SiteFooter(brand models.Brand, f models.Footer, now time.Time) g.Node {
	columns := make([]g.Node, 0, len(f.Columns))
	for _, col := range f.Columns {
		links := make([]g.Node, 0, len(col.Links))
		for _, l := range col.Links {
			links = append(links, Li(NavLink(l, "text-sm text-gray-600 hover:text-gray-900")))
		}
		columns = append(columns, Div(
			H3(Class("text-sm font-semibold text-gray-900"), g.Text(col.Title)),
			Ul(Class("mt-3 space-y-2"), g.Group(links)),
		))
	}

	social := make([]g.Node, 0, len(f.Social))
	for _, l := range f.Social {
		social = append(social, NavLink(l, "text-sm text-gray-500 hover:text-gray-900"))
	}

	return Footer(
		Class("border-t border-gray-200 bg-white"),
		Div(
			Class("mx-auto grid max-w-6xl gap-10 px-5 py-12 md:grid-cols-4"),
			Div(
				Class("md:col-span-2 space-y-3"),
				P(Class("flex items-center gap-2 font-semibold text-gray-900"), LucideIcon("bar-chart-3", "h-5 w-5 text-blue-600"), g.Text(brand.Name)),
				g.If(brand.Tagline != "", P(Class("text-sm text-gray-600"), g.Text(brand.Tagline))),
				g.If(brand.Email != "", A(Href("mailto:"+brand.Email), Class("text-sm text-gray-600 hover:text-gray-900"), g.Text(brand.Email))),
			),
			g.Group(columns),
		),
		Div(
			Class("mx-auto flex max-w-6xl items-center justify-between border-t border-gray-100 px-5 py-6"),
			P(Class("text-xs text-gray-500"), g.Text(fmt.Sprintf("© %d %s", now.Year(), f.Copyright))),
			Div(Class("flex gap-4"), g.Group(social)),
		),
	)
}
