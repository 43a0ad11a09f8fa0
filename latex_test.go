package articlefmt

import (
	"strings"
	"testing"
)

func runLatex(input string, extensions Extensions) string {
	return string(Format([]byte(input), LatexRenderer(LatexFlagsNone), extensions))
}

func TestLatexBlocks(t *testing.T) {
	var tests = []string{
		"## Title",
		"\n\\section*{Title}\n",

		"### Sub",
		"\n\\subsection*{Sub}\n",

		"Some **bold** 100% & more",
		"\nSome \\textbf{bold} 100\\% \\& more\n",

		"- a\n- b",
		"\n\\begin{itemize}\n\\item a\n\\item b\n\\end{itemize}\n",

		"1. a\n2. *b*",
		"\n\\begin{enumerate}\n\\item a\n\\item \\textit{b}\n\\end{enumerate}\n",

		"[SHALLOW] x\n[DEEP] y",
		"\n\\begin{description}\n\\item[Shallow] x\n\\item[Deep] y\n\\end{description}\n",

		`He said "hi" -- it's`,
		"\nHe said ``hi'' --- it's\n",

		"---",
		"\n\\HRule\n",

		"> q_1",
		"\n\\begin{quotation}\nq\\_1\n\\end{quotation}\n",

		"a ~ b ^ c \\ d",
		"\na \\textasciitilde{} b \\textasciicircum{} c \\textbackslash{} d\n",

		"**x^2** costs $5_",
		"\n\\textbf{x\\textasciicircum{}2} costs \\$5\\_\n",

		">>> big",
		"\n\\begin{quote}\n\\large\\itshape big\n\\end{quote}\n",
	}
	doTestsWithRunner(t, tests, NoExtensions, runLatex)
}

func TestLatexLabels(t *testing.T) {
	expected := "\n\\section*{A B}\n\\label{a-b}\n"
	if actual := runLatex("## A B", AutoHeaderIDs); actual != expected {
		t.Errorf("\n%s", diff(expected, actual))
	}
}

func TestLatexStandalone(t *testing.T) {
	out := string(Format([]byte("text"), LatexRenderer(LatexStandalone), NoExtensions))
	if !strings.HasPrefix(out, "\\documentclass{article}\n") {
		t.Errorf("missing preamble in %q", out)
	}
	if !strings.Contains(out, "\\begin{document}\n\ntext\n") {
		t.Errorf("missing body in %q", out)
	}
	if !strings.HasSuffix(out, "\n\\end{document}\n") {
		t.Errorf("missing footer in %q", out)
	}
}
