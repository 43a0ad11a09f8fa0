package articlefmt

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"strings"
	"time"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 200

// Article is a formatted article together with its metadata record.
// The metadata comes from the TOML title block when TitleblockTOML is set.
type Article struct {
	Title   string
	Date    time.Time
	Excerpt string
	Tags    []string

	Body  []byte // rendered body
	Words int    // words in the body source
}

// NewArticle formats input and collects its metadata. It never fails;
// a broken title block is logged and ignored.
func NewArticle(input []byte, renderer Renderer, extensions Extensions) *Article {
	p := parse(input, renderer, extensions)
	if p == nil {
		return &Article{}
	}

	a := p.titleblock
	a.Body = p.out.Bytes()
	a.Words = countWords(input, extensions)
	return &a
}

// LoadArticle reads name from fsys and formats it. A missing file is
// treated as an empty document.
func LoadArticle(fsys FileSystem, name string, renderer Renderer, extensions Extensions) (*Article, error) {
	input, err := fsys.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("articlefmt: %s: no such article, rendering empty document", name)
		input = nil
	} else if err != nil {
		return nil, fmt.Errorf("reading article %s: %w", name, err)
	}
	return NewArticle(input, renderer, extensions), nil
}

// ReadingTime returns the estimated reading time in whole minutes, never
// less than one.
func (a *Article) ReadingTime() int {
	minutes := int(math.Round(float64(a.Words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// DisplayDate returns the date as "January 2, 2006", or "" when unset.
func (a *Article) DisplayDate() string {
	if a.Date.IsZero() {
		return ""
	}
	return a.Date.Format("January 2, 2006")
}

// countWords counts the words of the body source, skipping the title block
// when it is enabled.
func countWords(input []byte, extensions Extensions) int {
	lines := strings.Split(string(input), "\n")
	if extensions&TitleblockTOML != 0 {
		for len(lines) > 0 && strings.HasPrefix(lines[0], "%") {
			lines = lines[1:]
		}
	}
	n := 0
	for _, line := range lines {
		n += len(strings.Fields(line))
	}
	return n
}
