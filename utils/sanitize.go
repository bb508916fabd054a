package utils

import "github.com/microcosm-cc/bluemonday"

// Reader submitted HTML (post bodies, excerpts, comments) all passes
// through one shared UGC policy before it is stored.
var htmlPolicy = bluemonday.UGCPolicy()

// Sanitize strips markup not allowed in user generated content.
func Sanitize(input string) string {
	return htmlPolicy.Sanitize(input)
}
