package mdfmt

import "strings"

const fence = "```"

// span is a stretch of the document: prose to be run through the table
// parser, or the inside of a fenced code block to be echoed untouched.
type span struct {
	text string
	code bool
}

// splitFences splits doc on the literal triple-backtick delimiter into
// alternating prose and code spans, starting with prose. The delimiters
// are not part of any span; exactly one sits between adjacent spans, so
// an unmatched final fence is reproduced without ever fabricating a
// closing one.
func splitFences(doc string) []span {
	parts := strings.Split(doc, fence)
	spans := make([]span, len(parts))
	for i, part := range parts {
		spans[i] = span{text: part, code: i%2 == 1}
	}
	return spans
}
