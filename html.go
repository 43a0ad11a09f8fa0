//
// Articlefmt Plain-Text Article Formatter
// Available at http://github.com/iamjayakumars/articlefmt
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
//
// HTML rendering backend
//
//

package articlefmt

import (
	"bytes"
	"fmt"
)

type HTMLFlags int

// HTML renderer configuration options.
const (
	HTMLFlagsNone HTMLFlags = 0
	UseXHTML      HTMLFlags = 1 << iota // Generate XHTML output instead of HTML
	SafeText                            // Escape raw '&', '<' and '>' in the text
)

// HTMLRendererParameters are the optional settings of the HTML renderer.
type HTMLRendererParameters struct {
	// If set, add this text to the front of each Header ID, to ensure
	// uniqueness.
	HeaderIDPrefix string
	// If set, add this text to the back of each Header ID, to ensure uniqueness.
	HeaderIDSuffix string
}

// HTML is a type that implements the Renderer interface for HTML output.
//
// Do not create this directly, instead use the HTMLRenderer function.
type HTML struct {
	flags    HTMLFlags
	closeTag string // how to end singleton tags: either " />" or ">"

	parameters HTMLRendererParameters

	// Track header IDs to prevent ID collision in a single generation.
	headerIDs map[string]int
}

const (
	xhtmlClose = " />"
	htmlClose  = ">"
)

// comparisonLabels are the fixed class and heading of each comparison side.
var comparisonLabels = [...]struct {
	class string
	label string
}{
	Shallow: {"shallow", "⚠ Shallow"},
	Deep:    {"deep", "✓ Deep"},
}

// HTMLRenderer creates and configures an HTML object, which
// satisfies the Renderer interface.
//
// flags is a set of HTMLFlags ORed together.
func HTMLRenderer(flags HTMLFlags) *HTML {
	return HTMLRendererWithParameters(flags, HTMLRendererParameters{})
}

func HTMLRendererWithParameters(flags HTMLFlags, parameters HTMLRendererParameters) *HTML {
	// configure the rendering engine
	closeTag := htmlClose
	if flags&UseXHTML != 0 {
		closeTag = xhtmlClose
	}

	return &HTML{
		flags:      flags,
		closeTag:   closeTag,
		parameters: parameters,
		headerIDs:  make(map[string]int),
	}
}

func (r *HTML) Header(out *bytes.Buffer, text []byte, level int, id string) {
	if id != "" {
		id = r.ensureUniqueHeaderID(id)

		if r.parameters.HeaderIDPrefix != "" {
			id = r.parameters.HeaderIDPrefix + id
		}

		if r.parameters.HeaderIDSuffix != "" {
			id = id + r.parameters.HeaderIDSuffix
		}

		fmt.Fprintf(out, "<h%d id=\"%s\">", level, id)
	} else {
		fmt.Fprintf(out, "<h%d>", level)
	}
	out.Write(text)
	fmt.Fprintf(out, "</h%d>\n", level)
}

func (r *HTML) PullQuote(out *bytes.Buffer, text []byte) {
	out.WriteString("<div class=\"pull-quote\">")
	out.Write(text)
	out.WriteString("</div>\n")
}

func (r *HTML) BlockQuote(out *bytes.Buffer, text []byte) {
	out.WriteString("<blockquote><p>")
	out.Write(text)
	out.WriteString("</p></blockquote>\n")
}

func (r *HTML) HRule(out *bytes.Buffer) {
	out.WriteString("<hr")
	out.WriteString(r.closeTag)
	out.WriteByte('\n')
}

func (r *HTML) BeginComparison(out *bytes.Buffer) {
	out.WriteString("<div class=\"comparison-block\">\n")
}

func (r *HTML) ComparisonItem(out *bytes.Buffer, text []byte, side Side) {
	l := comparisonLabels[side]
	out.WriteString("<div class=\"comparison-item ")
	out.WriteString(l.class)
	out.WriteString("\"><h4>")
	out.WriteString(l.label)
	out.WriteString("</h4><p>")
	out.Write(text)
	out.WriteString("</p></div>\n")
}

func (r *HTML) EndComparison(out *bytes.Buffer) {
	out.WriteString("</div>\n")
}

func (r *HTML) BeginList(out *bytes.Buffer, kind ListType) {
	if kind == ListTypeOrdered {
		out.WriteString("<ol>\n")
	} else {
		out.WriteString("<ul>\n")
	}
}

func (r *HTML) ListItem(out *bytes.Buffer, text []byte, kind ListType) {
	out.WriteString("<li>")
	out.Write(text)
	out.WriteString("</li>\n")
}

func (r *HTML) EndList(out *bytes.Buffer, kind ListType) {
	if kind == ListTypeOrdered {
		out.WriteString("</ol>\n")
	} else {
		out.WriteString("</ul>\n")
	}
}

func (r *HTML) Paragraph(out *bytes.Buffer, text []byte) {
	out.WriteString("<p>")
	out.Write(text)
	out.WriteString("</p>\n")
}

func (r *HTML) DoubleEmphasis(out *bytes.Buffer, text []byte) {
	out.WriteString("<strong>")
	out.Write(text)
	out.WriteString("</strong>")
}

func (r *HTML) Emphasis(out *bytes.Buffer, text []byte) {
	out.WriteString("<em>")
	out.Write(text)
	out.WriteString("</em>")
}

func (r *HTML) Quoted(out *bytes.Buffer, text []byte) {
	out.WriteString("“")
	out.Write(text)
	out.WriteString("”")
}

func (r *HTML) Apostrophe(out *bytes.Buffer) {
	out.WriteString("’")
}

func (r *HTML) EmDash(out *bytes.Buffer) {
	out.WriteString("—")
}

// NormalText copies text verbatim unless SafeText is set. The double quote
// is never escaped, the quote pass still needs it.
func (r *HTML) NormalText(out *bytes.Buffer, text []byte) {
	if r.flags&SafeText != 0 {
		escapeHTML(out, text)
		return
	}
	out.Write(text)
}

// An HTML fragment has no header or footer.
func (r *HTML) DocumentHeader(out *bytes.Buffer) {}

func (r *HTML) DocumentFooter(out *bytes.Buffer) {}

func (r *HTML) ensureUniqueHeaderID(id string) string {
	for count, found := r.headerIDs[id]; found; count, found = r.headerIDs[id] {
		tmp := fmt.Sprintf("%s-%d", id, count+1)

		if _, tmpFound := r.headerIDs[tmp]; !tmpFound {
			r.headerIDs[id] = count + 1
			id = tmp
		} else {
			id = id + "-1"
		}
	}

	if _, found := r.headerIDs[id]; !found {
		r.headerIDs[id] = 0
	}

	return id
}
