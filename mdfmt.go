package mdfmt

import (
	"fmt"
	"io"
	"strings"
)

// Notice is an advisory diagnostic recorded in strict mode when a table
// is judged broken. Line is the 1-based line number, counted over the
// output produced so far, at which the break was detected. Notices never
// change the formatted text.
type Notice struct {
	Line int
}

// String renders the notice the way the CLI prints it.
func (n Notice) String() string {
	return fmt.Sprintf("table at line %d appears broken; left unformatted", n.Line)
}

// Format rewrites every well-formed pipe table in doc into canonical
// aligned form and returns the result. All other text, fenced code
// blocks included, passes through untouched. A malformed table degrades
// to its original source lines; when strict is true each one is also
// reported as a [Notice]. The error is reserved for internal faults and
// is nil for any textual input.
func Format(doc string, strict bool) (string, []Notice, error) {
	var out strings.Builder
	out.Grow(len(doc))
	p := newParser(&out, strict)

	for i, sp := range splitFences(doc) {
		if i > 0 {
			out.WriteString(fence)
		}
		if sp.code {
			out.WriteString(sp.text)
			continue
		}
		for _, line := range proseLines(sp.text) {
			p.feedLine(line)
		}
	}
	p.flush()

	return out.String(), p.notices, nil
}

// Write formats doc and writes the result to w. Notices are returned,
// not written; they are a side channel for the caller.
func Write(w io.Writer, doc string, strict bool) ([]Notice, error) {
	text, notices, err := Format(doc, strict)
	if err != nil {
		return notices, err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return notices, err
	}
	return notices, nil
}

// proseLines splits a prose span into lines the way a line iterator
// does: the final newline does not yield an empty trailing line, and a
// '\r' preceding a newline is dropped.
func proseLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
