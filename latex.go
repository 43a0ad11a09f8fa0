//
// Articlefmt Plain-Text Article Formatter
// Available at http://github.com/iamjayakumars/articlefmt
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
//
// LaTeX rendering backend
//
//

package articlefmt

import (
	"bytes"
)

type LatexFlags int

// LaTeX renderer configuration options.
const (
	LatexFlagsNone  LatexFlags = 0
	LatexStandalone LatexFlags = 1 << iota // Wrap the output in a complete document
)

// Latex is a type that implements the Renderer interface for LaTeX output.
//
// Do not create this directly, instead use the LatexRenderer function.
type Latex struct {
	flags LatexFlags
}

// LatexRenderer creates and configures a Latex object, which
// satisfies the Renderer interface.
func LatexRenderer(flags LatexFlags) *Latex {
	return &Latex{flags: flags}
}

func (r *Latex) Header(out *bytes.Buffer, text []byte, level int, id string) {
	switch level {
	case 2:
		out.WriteString("\n\\section*{")
	case 3:
		out.WriteString("\n\\subsection*{")
	default:
		out.WriteString("\n\\paragraph*{")
	}
	out.Write(text)
	out.WriteString("}\n")
	if id != "" {
		out.WriteString("\\label{")
		out.WriteString(id)
		out.WriteString("}\n")
	}
}

func (r *Latex) PullQuote(out *bytes.Buffer, text []byte) {
	out.WriteString("\n\\begin{quote}\n\\large\\itshape ")
	out.Write(text)
	out.WriteString("\n\\end{quote}\n")
}

func (r *Latex) BlockQuote(out *bytes.Buffer, text []byte) {
	out.WriteString("\n\\begin{quotation}\n")
	out.Write(text)
	out.WriteString("\n\\end{quotation}\n")
}

func (r *Latex) HRule(out *bytes.Buffer) {
	out.WriteString("\n\\HRule\n")
}

func (r *Latex) BeginComparison(out *bytes.Buffer) {
	out.WriteString("\n\\begin{description}\n")
}

func (r *Latex) ComparisonItem(out *bytes.Buffer, text []byte, side Side) {
	if side == Deep {
		out.WriteString("\\item[Deep] ")
	} else {
		out.WriteString("\\item[Shallow] ")
	}
	out.Write(text)
	out.WriteByte('\n')
}

func (r *Latex) EndComparison(out *bytes.Buffer) {
	out.WriteString("\\end{description}\n")
}

func (r *Latex) BeginList(out *bytes.Buffer, kind ListType) {
	if kind == ListTypeOrdered {
		out.WriteString("\n\\begin{enumerate}\n")
	} else {
		out.WriteString("\n\\begin{itemize}\n")
	}
}

func (r *Latex) ListItem(out *bytes.Buffer, text []byte, kind ListType) {
	out.WriteString("\\item ")
	out.Write(text)
	out.WriteByte('\n')
}

func (r *Latex) EndList(out *bytes.Buffer, kind ListType) {
	if kind == ListTypeOrdered {
		out.WriteString("\\end{enumerate}\n")
	} else {
		out.WriteString("\\end{itemize}\n")
	}
}

func (r *Latex) Paragraph(out *bytes.Buffer, text []byte) {
	out.WriteString("\n")
	out.Write(text)
	out.WriteString("\n")
}

func (r *Latex) DoubleEmphasis(out *bytes.Buffer, text []byte) {
	out.WriteString("\\textbf{")
	out.Write(text)
	out.WriteString("}")
}

func (r *Latex) Emphasis(out *bytes.Buffer, text []byte) {
	out.WriteString("\\textit{")
	out.Write(text)
	out.WriteString("}")
}

func (r *Latex) Quoted(out *bytes.Buffer, text []byte) {
	out.WriteString("``")
	out.Write(text)
	out.WriteString("''")
}

func (r *Latex) Apostrophe(out *bytes.Buffer) {
	out.WriteByte('\'')
}

func (r *Latex) EmDash(out *bytes.Buffer) {
	out.WriteString("---")
}

// latexEscape returns the replacement for a LaTeX special character, or
// nil when c is copied as is.
func latexEscape(c byte) []byte {
	switch c {
	case '_', '{', '}', '%', '$', '&', '#':
		return []byte{'\\', c}
	case '~':
		return []byte("\\textasciitilde{}")
	case '^':
		return []byte("\\textasciicircum{}")
	case '\\':
		return []byte("\\textbackslash{}")
	}
	return nil
}

func escapeSpecialChars(out *bytes.Buffer, text []byte) {
	org := 0
	for i := 0; i < len(text); i++ {
		seq := latexEscape(text[i])
		if seq == nil {
			continue
		}
		out.Write(text[org:i])
		out.Write(seq)
		org = i + 1
	}
	out.Write(text[org:])
}

func (r *Latex) NormalText(out *bytes.Buffer, text []byte) {
	escapeSpecialChars(out, text)
}

// header and footer
func (r *Latex) DocumentHeader(out *bytes.Buffer) {
	if r.flags&LatexStandalone == 0 {
		return
	}
	out.WriteString("\\documentclass{article}\n")
	out.WriteString("\n")
	out.WriteString("\\usepackage[margin=1in]{geometry}\n")
	out.WriteString("\\usepackage[utf8]{inputenc}\n")
	out.WriteString("\\usepackage{newunicodechar}\n")
	out.WriteString("\n")
	out.WriteString("\\newcommand{\\HRule}{\\rule{\\linewidth}{0.5mm}}\n")
	out.WriteString("\\addtolength{\\parskip}{0.5\\baselineskip}\n")
	out.WriteString("\\parindent=0pt\n")
	out.WriteString("\n")
	out.WriteString("% articlefmt v")
	out.WriteString(VERSION)
	out.WriteString("\n")
	out.WriteString("\\begin{document}\n")
}

func (r *Latex) DocumentFooter(out *bytes.Buffer) {
	if r.flags&LatexStandalone == 0 {
		return
	}
	out.WriteString("\n\\end{document}\n")
}
