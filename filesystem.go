package articlefmt

import (
	"os"
	"path"
	"path/filepath"
)

// FileSystem gives LoadArticle access to article sources. Names are
// slash-separated regardless of the host operating system.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// Dir is a FileSystem rooted at a native directory. Names cannot escape
// the root: "/../post.txt" reads post.txt inside it. An empty Dir is ".".
type Dir string

func (d Dir) ReadFile(name string) ([]byte, error) {
	root := string(d)
	if root == "" {
		root = "."
	}
	return os.ReadFile(filepath.Join(root, filepath.FromSlash(cleanName(name))))
}

// cleanName makes name absolute and strips any ".." that would climb
// above the root.
func cleanName(name string) string {
	return path.Clean("/" + name)
}

// virtualFS maps cleaned article names to their sources, for tests.
type virtualFS map[string]string

func (fs virtualFS) ReadFile(name string) ([]byte, error) {
	src, ok := fs[cleanName(name)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(src), nil
}
