package pkg

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// markdown passes raw HTML through; the bluemonday policy below is the
// single gate deciding what survives.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(ghtml.WithUnsafe()),
)

var htmlPolicy = bluemonday.UGCPolicy()

// Sanitize renders lightweight markup to HTML and strips everything
// outside the allow-list: scripts, event handlers, disallowed tags and
// attributes. It never fails; the worst case is an empty string. It is
// idempotent on its own output, so re-validated content can be passed
// through again.
func Sanitize(raw string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(strings.TrimSpace(raw)), &buf); err != nil {
		return ""
	}
	return strings.TrimSpace(htmlPolicy.Sanitize(buf.String()))
}
