package components

import (
	"fmt"
	"strconv"

	"digital_analytics_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DefaultAutoplayMS is the slide interval when content does not set one
const DefaultAutoplayMS = 4000

// ServiceCarousel renders the featured services slider driven by static/js/carousel.js
func ServiceCarousel(id string, services []models.ServiceCard, autoplayMS int) g.Node {
	if autoplayMS <= 0 {
		autoplayMS = DefaultAutoplayMS
	}

	slides := make([]g.Node, 0, len(services))
	for i, s := range services {
		features := make([]g.Node, 0, len(s.Features))
		for _, f := range s.Features {
			features = append(features, Span(Class("rounded bg-gray-100 px-2 py-1 text-xs"), g.Text(f)))
		}

		slides = append(slides, Div(
			Class("carousel-item md:basis-1/2 lg:basis-1/4"),
			Data("carousel-item", ""),
			Role("group"),
			Aria("roledescription", "slide"),
			Aria("label", fmt.Sprintf("%d of %d: %s", i+1, len(services), s.Title)),
			Div(
				Class("w-full max-w-sm space-y-3 text-left"),
				Div(
					Class("flex aspect-square items-center justify-center rounded-md bg-tag-bg p-4"),
					Img(Src(s.Image), Alt(s.Title), Width("100"), Height("100"), Class("h-full w-fit"), g.Attr("loading", "lazy")),
				),
				Div(
					Class("space-y-1"),
					P(Class("text-md leading-snug text-heading"), g.Text(s.Title)),
					P(Class("mb-2 text-sm text-gray-600"), g.Text(s.Description)),
					Div(Class("flex flex-wrap gap-1"), g.Group(features)),
				),
			),
		))
	}

	return Div(
		ID(id),
		Class("carousel relative mt-14 w-full"),
		Data("carousel", ""),
		Data("autoplay", strconv.Itoa(autoplayMS)),
		Aria("labelledby", "featured-services-heading"),
		H2(ID("featured-services-heading"), Class("sr-only"), g.Text("Featured Services")),
		Div(Class("carousel-fade carousel-fade-left")),
		Div(Class("carousel-fade carousel-fade-right")),
		Div(Class("carousel-viewport overflow-hidden"), Div(Class("carousel-track flex"), g.Group(slides))),
		Button(Type("button"), Class("carousel-prev"), Data("carousel-prev", ""), Aria("label", "Previous service"), LucideIcon("chevron-left", "h-4 w-4")),
		Button(Type("button"), Class("carousel-next"), Data("carousel-next", ""), Aria("label", "Next service"), LucideIcon("chevron-right", "h-4 w-4")),
	)
}
