package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, JSON(map[string]int{"a": 1}))
	assert.Equal(t, "{}", JSON(make(chan int)))
	assert.Equal(t, `"\u003c/script\u003e"`, JSON("</script>"))
}

func TestJSONScript(t *testing.T) {
	html := render(t, JSONScript("data", map[string]string{"x": "</script><b>"}))
	assert.Equal(t, `<script type="application/json" id="data">{"x":"\u003c/script\u003e\u003cb\u003e"}</script>`, html)
}
