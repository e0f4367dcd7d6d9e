package textfmt

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightShell colors a command line for a 256-color terminal. The input
// is returned unchanged if highlighting fails.
func HighlightShell(src string) string {
	var b strings.Builder
	if err := quick.Highlight(&b, src, "bash", "terminal256", "monokai"); err != nil {
		return src
	}
	return strings.TrimRight(b.String(), "\n")
}
