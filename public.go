// Public interface

package articlefmt

// ParseText formats raw article text as an HTML fragment using the default
// renderer and no extensions.
func ParseText(raw string) string {
	return string(FormatBasic([]byte(raw)))
}

// FormatBasic is a convenience function for simple rendering.
// It formats input with the XHTML renderer and no extensions enabled.
func FormatBasic(input []byte) []byte {
	return Format(input, HTMLRenderer(UseXHTML), NoExtensions)
}

// Format formats a block of article text.
// The renderer is used to format the output, and extensions dictates which
// non-standard extensions are enabled. A nil renderer yields nil.
func Format(input []byte, renderer Renderer, extensions Extensions) []byte {
	p := parse(input, renderer, extensions)
	if p == nil {
		return nil
	}
	return p.out.Bytes()
}
