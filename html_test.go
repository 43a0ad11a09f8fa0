package articlefmt

import (
	"testing"
)

func TestHeaderIDs(t *testing.T) {
	var tests = []string{
		"## Hello World",
		"<h2 id=\"hello-world\">Hello World</h2>\n",

		"### **Why** it's hard",
		"<h3 id=\"why-it-s-hard\"><strong>Why</strong> it’s hard</h3>\n",

		"## !!!",
		"<h2>!!!</h2>\n",
	}
	doTestsBlock(t, tests, AutoHeaderIDs)
}

func TestHeaderIDsAreUnique(t *testing.T) {
	input := "## Hello World\n## Hello World\n### Hello World"
	expected := "<h2 id=\"hello-world\">Hello World</h2>\n" +
		"<h2 id=\"hello-world-1\">Hello World</h2>\n" +
		"<h3 id=\"hello-world-2\">Hello World</h3>\n"
	if actual := runFormatBlock(input, AutoHeaderIDs); actual != expected {
		t.Errorf("\n%s", diff(expected, actual))
	}
}

func TestHeaderIDPrefixSuffix(t *testing.T) {
	renderer := HTMLRendererWithParameters(UseXHTML, HTMLRendererParameters{
		HeaderIDPrefix: "article-",
		HeaderIDSuffix: "-x",
	})
	expected := "<h2 id=\"article-intro-x\">Intro</h2>\n"
	if actual := string(Format([]byte("## Intro"), renderer, AutoHeaderIDs)); actual != expected {
		t.Errorf("\n%s", diff(expected, actual))
	}
}

func TestHTMLCloseTag(t *testing.T) {
	if actual := string(Format([]byte("---"), HTMLRenderer(HTMLFlagsNone), NoExtensions)); actual != "<hr>\n" {
		t.Errorf("expected <hr>, got %q", actual)
	}
}

func TestSafeText(t *testing.T) {
	renderer := HTMLRenderer(UseXHTML | SafeText)
	var tests = []struct {
		input, expected string
	}{
		{"a < b & c", "<p>a &lt; b &amp; c</p>\n"},
		{`"x" <y>`, "<p>“x” &lt;y&gt;</p>\n"},
		{"> **a** > b", "<blockquote><p><strong>a</strong> &gt; b</p></blockquote>\n"},
		{"&amp;", "<p>&amp;amp;</p>\n"},
		{"<<&>>", "<p>&lt;&lt;&amp;&gt;&gt;</p>\n"},
	}
	for _, test := range tests {
		if actual := string(Format([]byte(test.input), renderer, NoExtensions)); actual != test.expected {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]", test.input, test.expected, actual)
		}
	}
}
