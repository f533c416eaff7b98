// Package assets holds the static files served next to the page.
package assets

import "embed"

//go:embed *.css
var FS embed.FS
