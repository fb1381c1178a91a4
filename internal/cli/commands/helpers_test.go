package commands

import "noserun/internal/config"

func configFor(storageDir string) *config.Config {
	cfg := config.New()
	cfg.StorageDir = storageDir
	return cfg
}
