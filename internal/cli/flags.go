package cli

import "noserun/internal/config"

// Flags holds command-line flags
type Flags struct {
	File        string
	Offset      int
	Line        int
	Stdin       bool
	Interactive bool
	Quiet       bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		File:        f.File,
		Offset:      f.Offset,
		Line:        f.Line,
		Stdin:       f.Stdin,
		Interactive: f.Interactive,
		Quiet:       f.Quiet,
	}
}
