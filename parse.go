package mdfmt

import "strings"

// parser drives the table state machine over prose lines, appending
// formatted text to out. Code-fence spans never reach it, but its state
// survives between prose spans so a table interrupted by a fence picks
// up where it left off.
type parser struct {
	state   parseState
	out     *strings.Builder
	strict  bool
	notices []Notice
}

func newParser(out *strings.Builder, strict bool) *parser {
	return &parser{state: regularText{}, out: out, strict: strict}
}

// feedLine advances the machine by one line.
func (p *parser) feedLine(line string) {
	p.state = p.state.feed(p, line)
}

// flush ends the input: a header still awaiting its separator is emitted
// verbatim, an open table is rendered.
func (p *parser) flush() {
	switch s := p.state.(type) {
	case checkingHeader:
		p.emitLine(s.sourceHeader)
	case readingTable:
		s.tbl.render(p.out)
	}
	p.state = regularText{}
}

func (p *parser) emitLine(line string) {
	p.out.WriteString(line)
	p.out.WriteByte('\n')
}

// outputLine is the 1-based line number the next emitted line will have.
func (p *parser) outputLine() int {
	return 1 + strings.Count(p.out.String(), "\n")
}

// parseState is the tagged union of the machine's three states. Each
// state consumes one line, may emit text through p, and returns the next
// state. regularText is re-entered directly on fallback so the offending
// line is reclassified within the same step.
type parseState interface {
	feed(p *parser, line string) parseState
}

// regularText: not inside any candidate table.
type regularText struct{}

// checkingHeader: the previous line was pipe-delimited; its raw text and
// parsed fields are held until the next line confirms or refutes a
// separator row.
type checkingHeader struct {
	sourceHeader string
	headers      []string
}

// readingTable: header and separator confirmed. sourceLines is the
// speculative buffer, restored verbatim if the table turns out broken.
type readingTable struct {
	sourceLines []string
	tbl         *table
}

func (regularText) feed(p *parser, line string) parseState {
	fields, ok := splitPipeRow(line)
	if !ok {
		p.emitLine(line)
		return regularText{}
	}
	return checkingHeader{sourceHeader: line, headers: fields}
}

func (s checkingHeader) feed(p *parser, line string) parseState {
	fields, ok := splitPipeRow(line)
	if !ok || len(fields) != len(s.headers) {
		p.emitLine(s.sourceHeader)
		return regularText{}.feed(p, line)
	}
	aligns := make([]alignment, len(fields))
	for i, cell := range fields {
		align, valid := parseSeparatorCell(cell)
		if !valid {
			p.emitLine(s.sourceHeader)
			return regularText{}.feed(p, line)
		}
		aligns[i] = align
	}
	return readingTable{
		sourceLines: []string{s.sourceHeader, line},
		tbl:         newTable(s.headers, aligns),
	}
}

func (s readingTable) feed(p *parser, line string) parseState {
	fields, ok := splitPipeRow(line)
	if !ok {
		// A non-pipe line ends a valid table.
		s.tbl.render(p.out)
		return regularText{}.feed(p, line)
	}
	if len(fields) != len(s.tbl.columns) {
		// A pipe line with the wrong field count means the table is
		// broken, not finished: discard the parse and restore the
		// buffered source text.
		if p.strict {
			p.notices = append(p.notices, Notice{Line: p.outputLine()})
		}
		for _, src := range s.sourceLines {
			p.emitLine(src)
		}
		return regularText{}.feed(p, line)
	}
	s.sourceLines = append(s.sourceLines, line)
	s.tbl.addRow(fields)
	return s
}
