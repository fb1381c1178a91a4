package domain

import "errors"

var (
	// ErrNotSourceFile is returned when the active file is not a Python source file
	ErrNotSourceFile = errors.New("not a python source file")
	// ErrNoTestFound is returned when no test method precedes the cursor
	ErrNoTestFound = errors.New("no test method found")
	// ErrNoEnvironment is returned in strict mode when no activation script was found
	ErrNoEnvironment = errors.New("no virtual environment found")
)
