// Warnings raised while formatting.

package articlefmt

import "log"

// printf logs a warning tagged with the current source line. Formatting
// itself never fails, so this is the only way problems surface.
func printf(p *parser, format string, v ...interface{}) {
	log.Printf("articlefmt: line %d: "+format, append([]interface{}{p.lineNumber}, v...)...)
}
