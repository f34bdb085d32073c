// Package content holds the landing page copy shipped with the binary.
package content

import _ "embed"

// Default is the embedded site.yaml, used when CONTENT_PATH is not set
//
//go:embed site.yaml
var Default []byte
