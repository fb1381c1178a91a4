package domain

import "path/filepath"

// CursorContext is what the text scan found around the cursor
type CursorContext struct {
	Class  string // first class in the buffer, empty if none
	Method string // nearest test method at or above the cursor line
}

// Test identifies the single test to run
type Test struct {
	Path   string // Absolute path of the source file
	Class  string // Enclosing class, may be empty
	Method string // Test method name
}

// Dir returns the directory holding the source file
func (t Test) Dir() string {
	return filepath.Dir(t.Path)
}

// FileName returns the source file name relative to Dir
func (t Test) FileName() string {
	return filepath.Base(t.Path)
}

// Target returns the runner target, file:Class.method.
// Without a class it is file:method, the runner's form for module-level tests.
func (t Test) Target() string {
	if t.Class == "" {
		return t.FileName() + ":" + t.Method
	}
	return t.FileName() + ":" + t.Class + "." + t.Method
}
