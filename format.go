//
// Articlefmt Plain-Text Article Formatter
// Available at http://github.com/iamjayakumars/articlefmt
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
//
// Block-level parsing
//
//

package articlefmt

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/shurcooL/sanitized_anchor_name"
)

// VERSION of the formatter.
const VERSION = "1.2"

// Extensions is a set of parser extensions.
// OR these values together to select multiple extensions.
type Extensions int

// These are the supported parser extensions.
const (
	NoExtensions   Extensions = 0
	TitleblockTOML Extensions = 1 << iota // Leading '%' lines hold a TOML title block
	AutoHeaderIDs                         // Create heading IDs from the heading text
)

// ListType tells which kind of list, if any, is open.
type ListType int

const (
	ListTypeNone ListType = iota
	ListTypeUnordered
	ListTypeOrdered
)

// Side is the half of a comparison group an item belongs to.
type Side int

const (
	Shallow Side = iota
	Deep
)

// Renderer is the rendering interface.
// The parser calls these methods in document order; each writes its
// fragment to out. The text handed to block-level methods has already been
// through the inline callbacks.
//
// This is mostly of interest if you are implementing a new rendering format.
// Most users will use HTMLRenderer or LatexRenderer.
type Renderer interface {
	// block-level callbacks
	Header(out *bytes.Buffer, text []byte, level int, id string)
	PullQuote(out *bytes.Buffer, text []byte)
	BlockQuote(out *bytes.Buffer, text []byte)
	HRule(out *bytes.Buffer)
	BeginComparison(out *bytes.Buffer)
	ComparisonItem(out *bytes.Buffer, text []byte, side Side)
	EndComparison(out *bytes.Buffer)
	BeginList(out *bytes.Buffer, kind ListType)
	ListItem(out *bytes.Buffer, text []byte, kind ListType)
	EndList(out *bytes.Buffer, kind ListType)
	Paragraph(out *bytes.Buffer, text []byte)

	// span-level callbacks
	DoubleEmphasis(out *bytes.Buffer, text []byte)
	Emphasis(out *bytes.Buffer, text []byte)
	Quoted(out *bytes.Buffer, text []byte)
	Apostrophe(out *bytes.Buffer)
	EmDash(out *bytes.Buffer)

	// low-level callbacks
	NormalText(out *bytes.Buffer, text []byte)

	// header and footer
	DocumentHeader(out *bytes.Buffer)
	DocumentFooter(out *bytes.Buffer)
}

// parser holds the state of a single formatting call.
type parser struct {
	r     Renderer
	flags Extensions
	out   bytes.Buffer

	para         [][]byte // pending paragraph lines
	list         ListType // currently open list
	inComparison bool

	lineNumber int
	titleblock Article
}

// blockRule pairs a line predicate with the action taken when it matches.
// Lines are tested against blockRules in order; the first match wins.
type blockRule struct {
	match func(line []byte) bool
	apply func(p *parser, line []byte)
}

var blockRules = []blockRule{
	{isEmptyLine, (*parser).blank},
	{prefixRule(">>> "), (*parser).pullQuote},
	{prefixRule("### "), (*parser).header3}, // before "## "
	{prefixRule("## "), (*parser).header2},
	{isHRule, (*parser).hrule},
	{prefixRule("> "), (*parser).blockQuote},
	{comparisonRule(shallowMarker), (*parser).shallow},
	{comparisonRule(deepMarker), (*parser).deep},
	{isUnorderedItem, (*parser).unorderedItem},
	{isOrderedItem, (*parser).orderedItem},
	{anyLine, (*parser).text},
}

var (
	shallowMarker = []byte("[SHALLOW]")
	deepMarker    = []byte("[DEEP]")
)

func parse(input []byte, renderer Renderer, extensions Extensions) *parser {
	// no point in parsing if we can't render
	if renderer == nil {
		return nil
	}

	p := &parser{r: renderer, flags: extensions}
	lines := bytes.Split(input, []byte{'\n'})
	if extensions&TitleblockTOML != 0 {
		lines = p.titleBlock(lines)
	}

	p.r.DocumentHeader(&p.out)
	for _, line := range lines {
		p.lineNumber++
		p.line(line)
	}
	p.closeAll()
	p.r.DocumentFooter(&p.out)
	return p
}

func (p *parser) line(raw []byte) {
	line := bytes.TrimFunc(raw, isspace)
	for _, rule := range blockRules {
		if rule.match(line) {
			rule.apply(p, line)
			return
		}
	}
}

//
//
// Line predicates
//
//

// isspace reports whether r is trimmed from lines and markers: Unicode
// white space and the byte order mark, but not NEL.
func isspace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}

func isEmptyLine(line []byte) bool {
	return len(line) == 0
}

func anyLine([]byte) bool {
	return true
}

func isHRule(line []byte) bool {
	return string(line) == "---"
}

func prefixRule(prefix string) func([]byte) bool {
	return func(line []byte) bool {
		return bytes.HasPrefix(line, []byte(prefix))
	}
}

func comparisonRule(marker []byte) func([]byte) bool {
	return func(line []byte) bool {
		return hasMarker(line, marker)
	}
}

// hasMarker is an ASCII case-insensitive prefix test.
func hasMarker(line, marker []byte) bool {
	if len(line) < len(marker) {
		return false
	}
	for i, c := range marker {
		if tolower(line[i]) != tolower(c) {
			return false
		}
	}
	return true
}

func tolower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func isdigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// '-' or '*' followed by a space
func isUnorderedItem(line []byte) bool {
	return len(line) >= 2 && (line[0] == '-' || line[0] == '*') && line[1] == ' '
}

// one or more digits, a '.', then white space
func isOrderedItem(line []byte) bool {
	return orderedPrefixEnd(line) > 0
}

// orderedPrefixEnd returns the offset just past the "N." marker when it is
// followed by white space, and 0 otherwise.
func orderedPrefixEnd(line []byte) int {
	i := 0
	for i < len(line) && isdigit(line[i]) {
		i++
	}
	if i == 0 || i >= len(line) || line[i] != '.' {
		return 0
	}
	i++
	if i >= len(line) {
		return 0
	}
	if r, _ := utf8.DecodeRune(line[i:]); !isspace(r) {
		return 0
	}
	return i
}

//
//
// Line actions
//
//

func (p *parser) blank([]byte) {
	p.closeAll()
}

func (p *parser) pullQuote(line []byte) {
	p.closeAll()
	p.r.PullQuote(&p.out, p.inline(line[len(">>> "):]))
}

func (p *parser) header3(line []byte) {
	p.header(line[len("### "):], 3)
}

func (p *parser) header2(line []byte) {
	p.header(line[len("## "):], 2)
}

func (p *parser) header(text []byte, level int) {
	p.closeAll()
	id := ""
	if p.flags&AutoHeaderIDs != 0 {
		id = sanitized_anchor_name.Create(string(text))
	}
	p.r.Header(&p.out, p.inline(text), level, id)
}

func (p *parser) hrule([]byte) {
	p.closeAll()
	p.r.HRule(&p.out)
}

func (p *parser) blockQuote(line []byte) {
	p.closeAll()
	p.r.BlockQuote(&p.out, p.inline(line[len("> "):]))
}

func (p *parser) shallow(line []byte) {
	p.comparisonItem(line[len(shallowMarker):], Shallow)
}

func (p *parser) deep(line []byte) {
	p.comparisonItem(line[len(deepMarker):], Deep)
}

// comparisonItem keeps an already open comparison group, so consecutive
// shallow and deep lines share one container.
func (p *parser) comparisonItem(text []byte, side Side) {
	p.flushParagraph()
	p.closeList()
	if !p.inComparison {
		p.r.BeginComparison(&p.out)
		p.inComparison = true
	}
	p.r.ComparisonItem(&p.out, p.inline(bytes.TrimLeftFunc(text, isspace)), side)
}

func (p *parser) unorderedItem(line []byte) {
	p.listItem(line[2:], ListTypeUnordered)
}

func (p *parser) orderedItem(line []byte) {
	p.listItem(bytes.TrimLeftFunc(line[orderedPrefixEnd(line):], isspace), ListTypeOrdered)
}

func (p *parser) listItem(text []byte, kind ListType) {
	p.flushParagraph()
	p.closeComparison()
	if p.list != kind {
		p.closeList()
		p.r.BeginList(&p.out, kind)
		p.list = kind
	}
	p.r.ListItem(&p.out, p.inline(text), kind)
}

func (p *parser) text(line []byte) {
	p.para = append(p.para, line)
}

//
//
// Flushing
//
//

func (p *parser) closeAll() {
	p.flushParagraph()
	p.closeList()
	p.closeComparison()
}

// flushParagraph joins the pending lines with single spaces and renders
// them as one paragraph.
func (p *parser) flushParagraph() {
	if len(p.para) == 0 {
		return
	}
	p.r.Paragraph(&p.out, p.inline(bytes.Join(p.para, []byte{' '})))
	p.para = p.para[:0]
}

func (p *parser) closeList() {
	if p.list == ListTypeNone {
		return
	}
	p.r.EndList(&p.out, p.list)
	p.list = ListTypeNone
}

func (p *parser) closeComparison() {
	if !p.inComparison {
		return
	}
	p.r.EndComparison(&p.out)
	p.inComparison = false
}
