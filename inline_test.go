//
// Unit tests for inline parsing
//

package articlefmt

import (
	"testing"
)

func TestDoubleEmphasis(t *testing.T) {
	var tests = []string{
		"nothing inline",
		"nothing inline",

		"simple **inline** test",
		"simple <strong>inline</strong> test",

		"**try two** in **one line**",
		"<strong>try two</strong> in <strong>one line</strong>",

		"**unclosed",
		"**unclosed",

		"**",
		"**",

		"****",
		"****",

		`**"x"**`,
		"<strong>“x”</strong>",
	}
	doTestsInline(t, tests)
}

func TestEmphasis(t *testing.T) {
	var tests = []string{
		"simple *inline* test",
		"simple <em>inline</em> test",

		"*a*",
		"<em>a</em>",

		"*unclosed",
		"*unclosed",

		"**",
		"**",

		"a * b * c",
		"a <em> b </em> c",

		"*x*y*",
		"<em>x</em>y*",

		"*a**b*",
		"<em>a**b</em>",

		"**bold** and *italic*",
		"<strong>bold</strong> and <em>italic</em>",
	}
	doTestsInline(t, tests)
}

// Bold runs first and takes the innermost pair it can, so a triple run
// leaves one '*' on each side for the italic pass and the tags cross.
func TestTripleAsterisks(t *testing.T) {
	var tests = []string{
		"***text***",
		"<strong><em>text</strong></em>",

		"***a** b*",
		"<strong><em>a</strong> b</em>",
	}
	doTestsInline(t, tests)
}

func TestSmartQuotes(t *testing.T) {
	var tests = []string{
		`He said "hi" and it's fine`,
		"He said “hi” and it’s fine",

		`"a" "b"`,
		"“a” “b”",

		`say "hi`,
		`say "hi`,

		`""`,
		`""`,

		`"it's"`,
		"“it’s”",
	}
	doTestsInline(t, tests)
}

func TestApostrophe(t *testing.T) {
	var tests = []string{
		"don't won't",
		"don’t won’t",

		"'quoted'",
		"'quoted'",

		"rock'n'roll",
		"rock’n'roll",

		"café's",
		"café's",

		"students' work",
		"students' work",
	}
	doTestsInline(t, tests)
}

func TestEmDash(t *testing.T) {
	var tests = []string{
		"a -- b",
		"a — b",

		"a--b",
		"a--b",

		"a -- b -- c",
		"a — b — c",

		" -- -- ",
		" — -- ",

		"a --- b",
		"a --- b",
	}
	doTestsInline(t, tests)
}

func TestRawMarkupPassesThrough(t *testing.T) {
	var tests = []string{
		"<b>raw & ok</b>",
		"<b>raw & ok</b>",

		"1 < 2 && 3 > 2",
		"1 < 2 && 3 > 2",
	}
	doTestsInline(t, tests)
}
