package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LucideIcon renders a decorative lucide icon through the iconify web component
func LucideIcon(name, class string) g.Node {
	if name == "" {
		return nil
	}
	return g.El("iconify-icon",
		g.Attr("icon", "lucide:"+name),
		Class("inline-block "+class),
		Aria("hidden", "true"),
	)
}
