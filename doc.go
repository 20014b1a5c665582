// Package mdfmt reformats Markdown pipe tables embedded in a document.
//
// Every well-formed pipe table — a |-bounded header line followed by a
// valid separator row — is rewritten into canonical GitHub-flavored form
// with consistent column widths and a single space of padding on each
// side of every cell. All other text passes through untouched, fenced
// code blocks included. The central entry points are [Format] and
// [Write], which take the whole document as a string:
//
//	formatted, notices, err := mdfmt.Format(doc, false)
//
// # Table Recognition
//
// A line is a table candidate when its trimmed form starts and ends with
// '|'. A candidate becomes a table header only if the next line is a
// valid separator row: the same number of cells, each an optional ':',
// a run of '-', and an optional ':'. The colons set column alignment
// (leading = left, trailing = right, both = center) and are reproduced
// on the rendered separator row.
//
// # Column Widths
//
// A column's width is the maximum display width over its trimmed cells,
// with a floor of one. Width is measured in terminal columns via
// [github.com/mattn/go-runewidth], so full-width characters count as
// two and padded cells line up under monospace rendering.
//
// # Malformed Tables
//
// Formatting never fails on textual input. A header without a valid
// separator is emitted verbatim. A body row whose cell count disagrees
// with the table's column count marks the table broken: the original
// source lines are restored verbatim and the offending line is
// reclassified from scratch, so it may itself start a new table. In
// strict mode each broken table is additionally reported as a [Notice]
// carrying the 1-based output line number of the break. Notices are a
// side channel; they never alter the formatted text.
//
// # Code Fences
//
// The document is split on literal ``` delimiters into alternating
// prose and code spans, starting with prose. Code spans are echoed
// byte-for-byte and never scanned for tables. An unmatched final fence
// is tolerated and preserved as-is.
//
// # Idempotence
//
// Formatting already-canonical output again yields byte-identical
// output.
package mdfmt
