package round

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"skiddie/internal/textfmt"
)

type lineResult struct {
	line string
	err  error
}

// LinePrompter reads newline-terminated input from any reader. Reads happen
// on a helper goroutine so a cancelled context returns immediately.
type LinePrompter struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan lineResult
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Prompt(ctx context.Context, marker string, check func(string) error) (string, error) {
	for {
		if _, err := fmt.Fprint(p.out, marker); err != nil {
			return "", err
		}
		var res lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return "", interrupted(context.Cause(ctx))
		case res = <-p.readLine():
			p.pending = nil
		}

		line := strings.TrimRight(res.line, "\r\n")
		if res.err != nil {
			if !errors.Is(res.err, io.EOF) {
				return "", res.err
			}
			if res.line == "" {
				return "", interrupted(io.EOF)
			}
		}
		if err := check(line); err != nil {
			var mm *MismatchError
			if errors.As(err, &mm) {
				_ = textfmt.Incorrect(p.out)
			}
			fmt.Fprintln(p.out, describeError(err))
			if res.err != nil {
				return "", interrupted(io.EOF)
			}
			continue
		}
		return line, nil
	}
}

// readLine starts a read unless one is already in flight from a cancelled prompt.
func (p *LinePrompter) readLine() <-chan lineResult {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		p.pending = ch
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}
	return p.pending
}

func describeError(err error) string {
	var mm *MismatchError
	if errors.As(err, &mm) {
		return fmt.Sprintf("%s (%s)", mm.Error(), mm.Hint())
	}
	return err.Error()
}
