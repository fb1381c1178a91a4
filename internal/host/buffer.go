package host

import (
	"fmt"
	"io"
	"os"
)

// Buffer is a View over text held in memory
type Buffer struct {
	path   string
	text   string
	cursor int
}

// NewBuffer creates a Buffer for path with the given text and cursor offset
func NewBuffer(path, text string, cursor int) *Buffer {
	return &Buffer{path: path, text: text, cursor: cursor}
}

// ReadBuffer reads the buffer text from r, or from path when r is nil.
// Editors pass unsaved content on stdin.
func ReadBuffer(path string, r io.Reader) (*Buffer, error) {
	var (
		data []byte
		err  error
	)
	if r != nil {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read buffer %s: %w", path, err)
	}
	return &Buffer{path: path, text: string(data)}, nil
}

// SetCursor moves the cursor to offset
func (b *Buffer) SetCursor(offset int) {
	b.cursor = offset
}

func (b *Buffer) FileName() string { return b.path }

func (b *Buffer) Text() string { return b.text }

func (b *Buffer) Cursor() int { return b.cursor }
