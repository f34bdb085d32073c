package components

import (
	"strings"

	"digital_analytics_site/middleware"
	"digital_analytics_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	htmxSrc      = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	iconifySrc   = "https://code.iconify.design/iconify-icon/2.1.0/iconify-icon.min.js"
	turnstileSrc = "https://challenges.cloudflare.com/turnstile/v0/api.js"
)

// PageConfig is what every page passes to Layout
type PageConfig struct {
	SEO   *models.SEO
	Nonce string
	// Turnstile loads the Cloudflare widget script when set
	Turnstile bool
}

// Layout renders the full document around body
func Layout(cfg PageConfig, body ...g.Node) g.Node {
	seo := cfg.SEO
	if seo == nil {
		seo = models.DefaultSEO("", "")
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1, maximum-scale=1")),
				TitleEl(g.Text(seo.Title)),
				SEOTags(seo),
				Link(Rel("icon"), Type("image/png"), Href(middleware.AssetURL(middleware.AssetFavicon))),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Geist:wght@400;500;600;700&display=swap")),
				Link(Rel("stylesheet"), Href(middleware.AssetURL(middleware.AssetCSS))),
				script(cfg.Nonce, htmxSrc),
				script(cfg.Nonce, iconifySrc),
				g.If(cfg.Turnstile, script(cfg.Nonce, turnstileSrc, Async())),
			),
			Body(
				Class("antialiased bg-gray-50 text-gray-900"),
				A(Href("#main-content"), Class("skip-link"), g.Text("Skip to content")),
				Div(Class("min-h-screen w-full"), g.Group(body)),
				script(cfg.Nonce, middleware.AssetURL(middleware.AssetMotionJS)),
				script(cfg.Nonce, middleware.AssetURL(middleware.AssetMarquee)),
				script(cfg.Nonce, middleware.AssetURL(middleware.AssetCarousel)),
				script(cfg.Nonce, middleware.AssetURL(middleware.AssetFormJS)),
			),
		),
	)
}

func script(nonce, src string, extra ...g.Node) g.Node {
	nodes := []g.Node{Src(src), Defer()}
	if nonce != "" {
		nodes = append(nodes, g.Attr("nonce", nonce))
	}
	return Script(append(nodes, extra...)...)
}

// SEOTags renders the description, robots, canonical, OpenGraph and Twitter tags
func SEOTags(seo *models.SEO) g.Node {
	nodes := []g.Node{
		metaName("description", seo.Description),
		metaName("robots", seo.RobotsDirective()),
	}
	if len(seo.Keywords) > 0 {
		nodes = append(nodes, metaName("keywords", strings.Join(seo.Keywords, ", ")))
	}
	if seo.Author != "" {
		nodes = append(nodes, metaName("author", seo.Author))
	}
	if seo.Category != "" {
		nodes = append(nodes, metaName("category", seo.Category))
	}
	if seo.ThemeColor != "" {
		nodes = append(nodes, metaName("theme-color", seo.ThemeColor))
	}
	if seo.Canonical != "" {
		nodes = append(nodes, Link(Rel("canonical"), Href(seo.Canonical)))
	}

	nodes = append(nodes,
		metaProperty("og:type", seo.OGType),
		metaProperty("og:title", seo.GetOGTitle()),
		metaProperty("og:description", seo.GetOGDesc()),
		metaProperty("og:site_name", seo.SiteName),
		metaProperty("og:locale", seo.Locale),
		metaProperty("og:url", seo.Canonical),
	)
	if seo.OGImage != "" {
		nodes = append(nodes,
			metaProperty("og:image", seo.OGImage),
			metaProperty("og:image:width", "1200"),
			metaProperty("og:image:height", "630"),
			metaProperty("og:image:alt", seo.OGImageAlt),
		)
	}

	nodes = append(nodes,
		metaName("twitter:card", seo.TwitterCard),
		metaName("twitter:title", seo.GetOGTitle()),
		metaName("twitter:description", seo.GetOGDesc()),
		metaName("twitter:image", seo.OGImage),
	)
	if seo.TwitterHandle != "" {
		nodes = append(nodes,
			metaName("twitter:site", seo.TwitterHandle),
			metaName("twitter:creator", seo.TwitterHandle),
		)
	}
	return g.Group(compact(nodes))
}

func compact(nodes []g.Node) []g.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// metaName skips empty values so optional tags disappear
func metaName(name, content string) g.Node {
	if content == "" {
		return nil
	}
	return Meta(Name(name), Content(content))
}

func metaProperty(property, content string) g.Node {
	if content == "" {
		return nil
	}
	return Meta(g.Attr("property", property), Content(content))
}
