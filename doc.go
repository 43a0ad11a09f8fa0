// Package articlefmt is a plain-text article formatter.
//
// Translates plain text written with a handful of line markers (headings,
// quotes, lists, dividers and shallow/deep comparison items) and inline
// markers (bold, italic, smart punctuation) into an HTML fragment (provided
// by articlefmt itself) or into LaTeX.
//
// The simplest way to invoke articlefmt is to call ParseText or FormatBasic.
// Format takes an explicit Renderer and a set of Extensions; NewArticle and
// LoadArticle additionally read the optional TOML title block that carries
// the article metadata (title, date, excerpt and tags).
//
// If you're interested in calling articlefmt from the command line, see
// cmd/articlefmt.
package articlefmt
