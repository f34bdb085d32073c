// Package emails embeds the transactional email templates.
package emails

import "embed"

//go:embed *.html *.txt
var FS embed.FS
