//
// Articlefmt Plain-Text Article Formatter
// Available at http://github.com/iamjayakumars/articlefmt
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

// Command articlefmt formats a plain-text article as HTML or LaTeX.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/iamjayakumars/articlefmt"
)

// CLI defines the command-line interface for articlefmt.
var CLI struct {
	Input  string `arg:"" optional:"" help:"Article source; standard input when omitted"`
	Output string `arg:"" optional:"" help:"Output file; standard output when omitted"`

	Latex     bool             `help:"Generate LaTeX output instead of HTML"`
	Page      bool             `help:"Generate a standalone LaTeX document (implies --latex)"`
	HTML      bool             `name:"html" help:"Use HTML-style singleton tags instead of XHTML"`
	Safe      bool             `help:"Escape raw &, < and > in the article text"`
	HeaderIDs bool             `name:"header-ids" help:"Give every heading an id attribute"`
	TOML      bool             `name:"toml" help:"Read a TOML title block from leading % lines"`
	Meta      bool             `help:"Print the article metadata to standard error"`
	Version   kong.VersionFlag `help:"Show articlefmt version"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("articlefmt"),
		kong.Description("Plain-text article formatter"),
		kong.UsageOnError(),
		kong.Vars{"version": articlefmt.VERSION},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	// enforce implied options
	if CLI.Page {
		CLI.Latex = true
	}

	var renderer articlefmt.Renderer
	if CLI.Latex {
		latexFlags := articlefmt.LatexFlagsNone
		if CLI.Page {
			latexFlags |= articlefmt.LatexStandalone
		}
		renderer = articlefmt.LatexRenderer(latexFlags)
	} else {
		htmlFlags := articlefmt.UseXHTML
		if CLI.HTML {
			htmlFlags = articlefmt.HTMLFlagsNone
		}
		if CLI.Safe {
			htmlFlags |= articlefmt.SafeText
		}
		renderer = articlefmt.HTMLRenderer(htmlFlags)
	}

	extensions := articlefmt.NoExtensions
	if CLI.TOML {
		extensions |= articlefmt.TitleblockTOML
	}
	if CLI.HeaderIDs {
		extensions |= articlefmt.AutoHeaderIDs
	}

	// read the input
	var article *articlefmt.Article
	if CLI.Input == "" {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading from standard input: %w", err)
		}
		article = articlefmt.NewArticle(input, renderer, extensions)
	} else {
		dir, name := filepath.Split(CLI.Input)
		var err error
		article, err = articlefmt.LoadArticle(articlefmt.Dir(dir), filepath.ToSlash(name), renderer, extensions)
		if err != nil {
			return err
		}
	}

	if CLI.Meta {
		printMeta(os.Stderr, article)
	}

	// output the result
	if CLI.Output == "" {
		if _, err := os.Stdout.Write(article.Body); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	return writeFile(CLI.Output, article.Body)
}

// writeFile creates name and writes data to it, reporting a failed close.
func writeFile(name string, data []byte) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}

func printMeta(w io.Writer, a *articlefmt.Article) {
	fmt.Fprintf(w, "title:   %s\n", a.Title)
	fmt.Fprintf(w, "date:    %s\n", a.DisplayDate())
	fmt.Fprintf(w, "excerpt: %s\n", a.Excerpt)
	fmt.Fprintf(w, "tags:    %s\n", strings.Join(a.Tags, ", "))
	fmt.Fprintf(w, "reading: %d min read (%d words)\n", a.ReadingTime(), a.Words)
}
