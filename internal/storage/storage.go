package storage

import (
	"noserun/internal/config"
	"noserun/internal/domain"
)

// Storage persists output panels so the show command can redisplay them.
type Storage interface {
	Save(panel *domain.Panel) error
	Load(name string) (*domain.Panel, error)
}

// JSONStorage stores each panel in a JSON file under the configured storage dir.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's panel paths.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
