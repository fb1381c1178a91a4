package discovery

import (
	"regexp"
	"strings"

	"noserun/internal/domain"
)

var (
	// Test methods are def test...( at any indentation
	testMethodPattern = regexp.MustCompile(`def (test\w*)\(`)
	// Only classes with a base list are considered
	classPattern = regexp.MustCompile(`class (\w+)\(`)
)

// Resolver finds the test under the cursor by scanning buffer text
type Resolver struct{}

// NewResolver creates a new Resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve scans the buffer for the test method at or above the cursor
// line and for the class the test belongs to.
//
// The class is the first class definition anywhere in the buffer. It is not
// checked to enclose the cursor, so files with several classes can resolve
// the wrong one.
func (r *Resolver) Resolve(text string, offset int) domain.CursorContext {
	return domain.CursorContext{
		Class:  r.FindClass(text),
		Method: r.FindTestMethod(text[:LineEnd(text, offset)]),
	}
}

// FindTestMethod returns the last test method defined in text, or "" if none
func (r *Resolver) FindTestMethod(text string) string {
	matches := testMethodPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}

// FindClass returns the first class defined in text, or "" if none
func (r *Resolver) FindClass(text string) string {
	match := classPattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}

// LineEnd returns the offset of the end of the line containing offset.
// Offsets outside the buffer are clamped.
func LineEnd(text string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(text) {
		return len(text)
	}
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(text)
}

// OffsetForLine returns the offset of the first character of a 1-based line.
// Lines past the end of the buffer map to the buffer length.
func OffsetForLine(text string, line int) int {
	offset := 0
	for n := 1; n < line; n++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}
	return offset
}
