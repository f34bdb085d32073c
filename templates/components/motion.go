package components

import (
	"digital_analytics_site/services/motion"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// MotionManifest embeds a section's scroll bindings for static/js/motion.js
func MotionManifest(t *motion.Trigger) g.Node {
	if t == nil {
		return nil
	}
	m := t.Manifest()
	return JSONScript("", m, Data("motion", m.Section))
}
