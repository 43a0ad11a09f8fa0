//
// Articlefmt Plain-Text Article Formatter
// Available at http://github.com/iamjayakumars/articlefmt
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Functions to parse inline elements.
//

package articlefmt

import (
	"bytes"
	"regexp"
)

// '.' never matches a line terminator
const notTerminator = `[^\n\r\x{2028}\x{2029}]`

var (
	reDoubleEmphasis = regexp.MustCompile(`\*\*(` + notTerminator + `+?)\*\*`)
	reQuoted         = regexp.MustCompile(`"([^"]+)"`)
	reApostrophe     = regexp.MustCompile(`(\w)'(\w)`)

	emDash = []byte(" -- ")
)

// InlineFmt applies the inline rules to a single line of text and returns
// the HTML result. Raw '<' and '&' are passed through untouched.
func InlineFmt(text string) string {
	return string(inlineFmt(HTMLRenderer(UseXHTML), []byte(text)))
}

func (p *parser) inline(text []byte) []byte {
	return inlineFmt(p.r, text)
}

// inlineFmt runs the inline passes in a fixed order. Each pass works on the
// output of the previous one, so the emphasis pass never sees the
// asterisks consumed by the double emphasis pass.
func inlineFmt(r Renderer, text []byte) []byte {
	var out bytes.Buffer
	r.NormalText(&out, text)
	data := out.Bytes()

	data = replaceAll(data, reDoubleEmphasis, func(out *bytes.Buffer, m [][]byte) {
		r.DoubleEmphasis(out, m[1])
	})
	data = emphasis(r, data)
	data = replaceAll(data, reQuoted, func(out *bytes.Buffer, m [][]byte) {
		r.Quoted(out, m[1])
	})
	data = replaceAll(data, reApostrophe, func(out *bytes.Buffer, m [][]byte) {
		out.Write(m[1])
		r.Apostrophe(out)
		out.Write(m[2])
	})
	return dashes(r, data)
}

// replaceAll calls fn for every non-overlapping match of re in data, with
// the match and its submatches, and copies the text in between.
func replaceAll(data []byte, re *regexp.Regexp, fn func(out *bytes.Buffer, m [][]byte)) []byte {
	locs := re.FindAllSubmatchIndex(data, -1)
	if locs == nil {
		return data
	}

	var out bytes.Buffer
	end := 0
	for _, loc := range locs {
		out.Write(data[end:loc[0]])
		m := make([][]byte, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = data[loc[2*i]:loc[2*i+1]]
			}
		}
		fn(&out, m)
		end = loc[1]
	}
	out.Write(data[end:])
	return out.Bytes()
}

// isEmphasisDelim reports whether data[i] is a lone '*', i.e. one with no
// '*' directly before or after it.
func isEmphasisDelim(data []byte, i int) bool {
	if data[i] != '*' {
		return false
	}
	if i > 0 && data[i-1] == '*' {
		return false
	}
	if i+1 < len(data) && data[i+1] == '*' {
		return false
	}
	return true
}

// terminatorLen returns the byte length of the line terminator starting
// at data[i], or 0.
func terminatorLen(data []byte, i int) int {
	switch {
	case data[i] == '\n' || data[i] == '\r':
		return 1
	case bytes.HasPrefix(data[i:], []byte("\u2028")), bytes.HasPrefix(data[i:], []byte("\u2029")):
		return 3
	}
	return 0
}

// emphasis wraps the shortest run between two lone '*' delimiters. The
// run holds at least one byte and no line terminator; scanning resumes
// after the closing delimiter.
func emphasis(r Renderer, data []byte) []byte {
	var out bytes.Buffer
	end, i := 0, 0
	for i < len(data) {
		if !isEmphasisDelim(data, i) {
			i++
			continue
		}

		closer := -1
		for j := i + 1; j < len(data); j++ {
			if terminatorLen(data, j) > 0 {
				break
			}
			if j > i+1 && isEmphasisDelim(data, j) {
				closer = j
				break
			}
		}
		if closer < 0 {
			i++
			continue
		}

		out.Write(data[end:i])
		r.Emphasis(&out, data[i+1:closer])
		end = closer + 1
		i = end
	}
	if end == 0 {
		return data
	}
	out.Write(data[end:])
	return out.Bytes()
}

// dashes replaces each " -- " with a spaced em dash.
func dashes(r Renderer, data []byte) []byte {
	if !bytes.Contains(data, emDash) {
		return data
	}

	var out bytes.Buffer
	for {
		i := bytes.Index(data, emDash)
		if i < 0 {
			break
		}
		out.Write(data[:i])
		out.WriteByte(' ')
		r.EmDash(&out)
		out.WriteByte(' ')
		data = data[i+len(emDash):]
	}
	out.Write(data)
	return out.Bytes()
}
