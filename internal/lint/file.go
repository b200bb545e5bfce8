package lint

import (
	"bytes"

	"github.com/monoblaine/sharpstyle/internal/syntax"
)

// File holds a parsed C# source file.
type File struct {
	Path   string
	Source []byte
	Lines  [][]byte
	Tree   *syntax.Tree
}

// NewFile parses source as C# and returns a File. The parser is
// tolerant, so this succeeds for any input.
func NewFile(path string, source []byte) *File {
	return &File{
		Path:   path,
		Source: source,
		Lines:  bytes.Split(source, []byte("\n")),
		Tree:   syntax.Parse(source),
	}
}

// LineOfOffset converts a byte offset in Source to a 1-based line number.
func (f *File) LineOfOffset(offset int) int {
	line := 1
	for i := 0; i < offset && i < len(f.Source); i++ {
		if f.Source[i] == '\n' {
			line++
		}
	}
	return line
}
