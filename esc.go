package articlefmt

import (
	"io"
)

// htmlEntity returns the entity for a character SafeText escapes, or nil.
func htmlEntity(c byte) []byte {
	switch c {
	case '&':
		return []byte("&amp;")
	case '<':
		return []byte("&lt;")
	case '>':
		return []byte("&gt;")
	}
	return nil
}

// escapeHTML writes s to w with '&', '<' and '>' replaced by entities.
func escapeHTML(w io.Writer, s []byte) {
	start := 0
	for i, c := range s {
		if ent := htmlEntity(c); ent != nil {
			w.Write(s[start:i])
			w.Write(ent)
			start = i + 1
		}
	}
	w.Write(s[start:])
}
