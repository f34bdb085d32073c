package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
)

// GridPattern draws the decorative square grid behind the contact card
func GridPattern(cols, rows, size int, class string) g.Node {
	var cells strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			fmt.Fprintf(&cells, `<rect x="%d" y="%d" width="%d" height="%d" class="grid-cell"></rect>`, x*size, y*size, size, size)
		}
	}

	return g.El("svg",
		g.Attr("width", fmt.Sprint(cols*size)),
		g.Attr("height", fmt.Sprint(rows*size)),
		g.Attr("class", "grid-pattern "+class),
		g.Attr("aria-hidden", "true"),
		g.Raw(cells.String()),
	)
}
