package generate

import "strings"

type RedirectKind int

const (
	RedirectFile RedirectKind = iota
	RedirectAppend
	RedirectPipe
)

func (k RedirectKind) Operator() string {
	switch k {
	case RedirectAppend:
		return ">>"
	case RedirectPipe:
		return "|"
	default:
		return ">"
	}
}

// Redirect sends an item's output to a file or into another item.
type Redirect struct {
	Kind   RedirectKind
	Target string
	Pipe   *Item
}

// Arg is one generated argument; it may span several shell words ("-m 3").
type Arg struct {
	Words []string
}

// Item is one generated command line. Items are never modified after
// Generate returns them.
type Item struct {
	Program    string
	Positional []string
	Args       []Arg
	Redirect   *Redirect
}

// Words returns the program name followed by every argument word, excluding
// any redirection.
func (it Item) Words() []string {
	words := []string{it.Program}
	words = append(words, it.Positional...)
	for _, a := range it.Args {
		words = append(words, a.Words...)
	}
	return words
}

// Render returns the canonical command line. Every word that is not made of
// safe characters is quoted, so operators only ever appear as separators.
func (it Item) Render() string {
	var b strings.Builder
	it.render(&b)
	return b.String()
}

func (it Item) render(b *strings.Builder) {
	for i, w := range it.Words() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Quote(w))
	}
	if it.Redirect == nil {
		return
	}
	b.WriteByte(' ')
	b.WriteString(it.Redirect.Kind.Operator())
	b.WriteByte(' ')
	if it.Redirect.Kind == RedirectPipe && it.Redirect.Pipe != nil {
		it.Redirect.Pipe.render(b)
		return
	}
	b.WriteString(Quote(it.Redirect.Target))
}

// Quote returns w as a single shell word.
func Quote(w string) string {
	if w == "" {
		return `""`
	}
	if isSafeWord(w) {
		return w
	}
	if !strings.ContainsAny(w, "\"\\$`!") {
		return `"` + w + `"`
	}
	return "'" + strings.ReplaceAll(w, "'", `'\''`) + "'"
}

func isSafeWord(w string) bool {
	for _, r := range w {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_@%+=:,./-~", r):
		default:
			return false
		}
	}
	return true
}
