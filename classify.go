package mdfmt

import "strings"

// alignment is a column's alignment as encoded by its separator cell.
type alignment int

const (
	alignNone alignment = iota
	alignLeft
	alignCenter
	alignRight
)

// splitPipeRow reports whether line is a pipe-row candidate and, if so,
// returns its trimmed fields. A candidate's trimmed form starts and ends
// with '|'. Fields come from splitting the text after the leading '|';
// the empty trailing field produced by the final '|' is discarded, and a
// line yielding zero fields is not a candidate.
func splitPipeRow(line string) ([]string, bool) {
	clean := strings.TrimSpace(line)
	if !strings.HasPrefix(clean, "|") || !strings.HasSuffix(clean, "|") {
		return nil, false
	}
	parts := strings.Split(clean[1:], "|")
	if n := len(parts); parts[n-1] == "" {
		parts = parts[:n-1]
	}
	if len(parts) == 0 {
		return nil, false
	}
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = strings.TrimSpace(part)
	}
	return fields, true
}

// parseSeparatorCell validates one cell of a candidate separator row and
// resolves the alignment it encodes: an optional leading ':', one or
// more '-', and an optional trailing ':'. Both colons mean center, a
// leading one left, a trailing one right, neither means unset.
func parseSeparatorCell(cell string) (alignment, bool) {
	s := strings.TrimSpace(cell)
	left := strings.HasPrefix(s, ":")
	if left {
		s = s[1:]
	}
	right := strings.HasSuffix(s, ":")
	if right {
		s = s[:len(s)-1]
	}
	if s == "" {
		return alignNone, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			return alignNone, false
		}
	}
	switch {
	case left && right:
		return alignCenter, true
	case left:
		return alignLeft, true
	case right:
		return alignRight, true
	default:
		return alignNone, true
	}
}
