package components

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// JSON marshals an object to a JSON string, returning "{}" on error.
// encoding/json escapes <, > and & so the result is safe inside a script element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// JSONScript embeds v as an inert application/json data block
func JSONScript(id string, v any, attrs ...g.Node) g.Node {
	nodes := []g.Node{Type("application/json")}
	if id != "" {
		nodes = append(nodes, ID(id))
	}
	nodes = append(nodes, attrs...)
	return Script(append(nodes, g.Raw(JSON(v)))...)
}
