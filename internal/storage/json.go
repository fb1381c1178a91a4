package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"noserun/internal/domain"
)

// ErrNoPanel is returned by Load when the panel was never written
var ErrNoPanel = errors.New("no output panel recorded yet")

// Save writes the panel to its JSON file, replacing earlier content.
func (s *JSONStorage) Save(panel *domain.Panel) error {
	data, err := json.MarshalIndent(panel, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal panel: %w", err)
	}

	path := s.cfg.GetPanelPath(panel.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	// Write through a temp file so show never reads a partial panel
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write panel: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write panel: %w", err)
	}
	return nil
}

// Load reads the named panel from its JSON file.
func (s *JSONStorage) Load(name string) (*domain.Panel, error) {
	path := s.cfg.GetPanelPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoPanel, name)
		}
		return nil, fmt.Errorf("read panel file: %w", err)
	}
	var panel domain.Panel
	if err := json.Unmarshal(data, &panel); err != nil {
		return nil, fmt.Errorf("parse panel: %w", err)
	}
	return &panel, nil
}
