package textfmt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestBanner(t *testing.T) {
	got := Banner("ACCESS GRANTED", '=', 30)
	if len(got) != 30 {
		t.Fatalf("banner width = %d, want 30: %q", len(got), got)
	}
	if got != "======= ACCESS GRANTED =======" {
		t.Fatalf("unexpected banner %q", got)
	}
	if odd := Banner("ab", '-', 7); odd != "- ab --" {
		t.Fatalf("extra padding goes right, got %q", odd)
	}
	if narrow := Banner("long message", '=', 4); narrow != " long message " {
		t.Fatalf("narrow banner = %q", narrow)
	}
}

func TestPrintBannerPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := Correct(&buf); err != nil {
		t.Fatalf("Correct: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "ACCESS GRANTED") != 1 || strings.Contains(out, "\x1b[") {
		t.Fatalf("expected one plain banner, got %q", out)
	}
	if len(strings.TrimSuffix(out, "\n")) != fallbackWidth {
		t.Fatalf("expected fallback width banner, got %d", len(out))
	}

	buf.Reset()
	if err := PrintBanner(&buf, "X", lipgloss.NewStyle().Bold(true)); err != nil {
		t.Fatalf("PrintBanner: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("style applied to non-terminal writer: %q", buf.String())
	}

	buf.Reset()
	_ = Incorrect(&buf)
	if !strings.Contains(buf.String(), " INCORRECT ") {
		t.Fatalf("missing incorrect banner: %q", buf.String())
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{63290 * time.Millisecond, "1m 3.3s"},
		{0, "0m 0.0s"},
		{2*time.Minute + 500*time.Millisecond, "2m 0.5s"},
	}
	for _, tc := range cases {
		if got := Duration(tc.in); got != tc.want {
			t.Fatalf("Duration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBytesAndCount(t *testing.T) {
	if got := Bytes(1536); got != "1.5 KiB" {
		t.Fatalf("Bytes(1536) = %q", got)
	}
	if got := Count(1234567); got != "1,234,567" {
		t.Fatalf("Count = %q", got)
	}
}

func TestTable(t *testing.T) {
	rows := [][]string{{"game", "time"}, {"shell_scripter", "1m 3.3s"}}
	got := Table(rows, "  ", false)
	want := "game            time\nshell_scripter  1m 3.3s"
	if got != want {
		t.Fatalf("left table:\n%s\nwant:\n%s", got, want)
	}
	right := Table([][]string{{"1", "a"}, {"100", "bb"}}, " ", true)
	if right != "  1  a\n100 bb" {
		t.Fatalf("right table = %q", right)
	}
}

func TestTableColumns(t *testing.T) {
	rows := [][]string{{"a"}, {"b"}, {"c"}}
	got := TableColumns(rows, 2, []string{"H"}, " ", false)
	want := "H H\na c\nb"
	if got != want {
		t.Fatalf("TableColumns = %q, want %q", got, want)
	}
}

func TestHighlightShellKeepsText(t *testing.T) {
	src := "grep -i error access.log | sort -r"
	got := HighlightShell(src)
	if !strings.Contains(stripANSI(got), "grep") || !strings.Contains(stripANSI(got), "sort -r") {
		t.Fatalf("highlighted text lost content: %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
