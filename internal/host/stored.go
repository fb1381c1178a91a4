package host

import (
	"fmt"
	"io"

	"noserun/internal/domain"
	"noserun/internal/logger"
	"noserun/internal/storage"
)

// StoredWindow keeps panels in storage and streams appended text to out
type StoredWindow struct {
	storage storage.Storage
	out     io.Writer
	created map[string]bool
}

// NewStoredWindow creates a StoredWindow. out may be nil to stay silent.
func NewStoredWindow(st storage.Storage, out io.Writer) *StoredWindow {
	if out == nil {
		out = io.Discard
	}
	return &StoredWindow{
		storage: st,
		out:     out,
		created: make(map[string]bool),
	}
}

// CreateOutputPanel replaces any stored panel of that name with an empty one
func (w *StoredWindow) CreateOutputPanel(name string) (Panel, error) {
	p := &StoredPanel{
		storage: w.storage,
		out:     w.out,
		panel:   &domain.Panel{Name: name},
	}
	if err := p.save(); err != nil {
		return nil, err
	}
	w.created[name] = true
	return p, nil
}

// ShowPanel writes the stored text of a panel created elsewhere.
// Panels created by this window are already streaming to out.
func (w *StoredWindow) ShowPanel(name string) error {
	if w.created[name] {
		logger.Debug("Panel already visible", "panel", name)
		return nil
	}
	panel, err := w.storage.Load(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w.out, panel.Text)
	return err
}

// StoredPanel is a Panel saved to storage on every change
type StoredPanel struct {
	storage storage.Storage
	out     io.Writer
	panel   *domain.Panel
}

// Append adds text to the end of the panel
func (p *StoredPanel) Append(text string) error {
	p.panel.Text += text
	if err := p.save(); err != nil {
		return err
	}
	_, err := io.WriteString(p.out, text)
	return err
}

// RecordRun stores the run metadata with the panel
func (p *StoredPanel) RecordRun(run domain.Run) error {
	p.panel.Run = &run
	return p.save()
}

// Content returns a copy of the panel as stored
func (p *StoredPanel) Content() domain.Panel {
	return *p.panel
}

func (p *StoredPanel) save() error {
	if err := p.storage.Save(p.panel); err != nil {
		return fmt.Errorf("save panel %s: %w", p.panel.Name, err)
	}
	return nil
}
