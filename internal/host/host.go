// Package host defines the editor capabilities a run needs and the
// implementations the command line provides for them.
package host

import "noserun/internal/domain"

// View is the active buffer
type View interface {
	FileName() string
	Text() string
	Cursor() int
}

// Panel is a named output surface text is appended to
type Panel interface {
	Append(text string) error
}

// RunRecorder is implemented by panels that keep run metadata next to
// their text, so a run can be repeated later.
type RunRecorder interface {
	RecordRun(run domain.Run) error
}

// Window creates and shows output panels
type Window interface {
	// CreateOutputPanel returns an empty panel, discarding earlier content
	CreateOutputPanel(name string) (Panel, error)
	ShowPanel(name string) error
}
