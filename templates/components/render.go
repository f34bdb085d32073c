// Package components holds the shared page chrome and building blocks of the site.
// Trees are built with gomponents and handed to handlers as templ components.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a node tree to templ so handlers can call Render(ctx, w)
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

