package articlefmt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// titleblock is the TOML form of the article metadata.
type titleblock struct {
	Title   string    `toml:"title"`
	Date    titleDate `toml:"date"`
	Excerpt string    `toml:"excerpt"`
	Tags    []string  `toml:"tags"`
}

// titleDate accepts both a bare TOML date (date = 2026-02-21) and the
// quoted form used by article registries (date = "2026-02-21").
type titleDate struct {
	t time.Time
}

func (d *titleDate) UnmarshalTOML(v interface{}) error {
	switch v := v.(type) {
	case time.Time:
		d.t = v
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return fmt.Errorf("date %q is not YYYY-MM-DD", v)
		}
		d.t = t
		return nil
	}
	return fmt.Errorf("date has unsupported type %T", v)
}

// titleBlock consumes the leading '%' lines, decodes them as TOML into
// p.titleblock and returns the remaining lines. A decode error is logged
// and leaves the metadata empty; it is never an error when formatting.
func (p *parser) titleBlock(lines [][]byte) [][]byte {
	var data bytes.Buffer
	n := 0
	for ; n < len(lines); n++ {
		if !bytes.HasPrefix(lines[n], []byte("%")) {
			break
		}
		data.Write(bytes.TrimPrefix(lines[n][1:], []byte(" ")))
		data.WriteByte('\n')
	}
	if n == 0 {
		return lines
	}

	p.lineNumber = 1
	var block titleblock
	md, err := toml.Decode(data.String(), &block)
	if err != nil {
		printf(p, "error in TOML titleblock: %s", err.Error())
	} else {
		for _, key := range md.Undecoded() {
			printf(p, "unknown key %q in TOML titleblock", key.String())
		}
		p.titleblock = Article{
			Title:   block.Title,
			Date:    block.Date.t,
			Excerpt: block.Excerpt,
			Tags:    block.Tags,
		}
	}

	// keep line numbers relative to the source
	p.lineNumber = n
	return lines[n:]
}
