package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Runner settings
	Runner string
	Shell  string

	// Environment lookup
	BinDir         string
	ActivateScript string
	RequireEnv     bool
	EnvFiles       []string

	// Source detection
	SourceExt string

	// Output settings
	PanelName   string
	StorageDir  string
	StripColors bool

	LogLevel string
	LogFile  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	File        string
	Offset      int
	Line        int
	Stdin       bool
	Interactive bool
	Quiet       bool
}

// Keys used in the config file and NOSERUN_* environment variables
const (
	KeyRunner         = "runner"
	KeyShell          = "shell"
	KeyBinDir         = "bin-dir"
	KeyActivateScript = "activate-script"
	KeyRequireEnv     = "require-env"
	KeyEnvFiles       = "env-file"
	KeySourceExt      = "source-ext"
	KeyPanelName      = "panel"
	KeyStorageDir     = "storage-dir"
	KeyStripColors    = "strip-colors"
	KeyLogLevel       = "log-level"
	KeyLogFile        = "log-file"
)

var envKeyReplacer = strings.NewReplacer("-", "_")

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Runner:         DefaultRunner,
		Shell:          DefaultShell,
		BinDir:         DefaultBinDir,
		ActivateScript: DefaultActivateScript,
		SourceExt:      DefaultSourceExt,
		PanelName:      DefaultPanelName,
		StorageDir:     DefaultStorageDir(),
		StripColors:    DefaultStripColors,
		LogLevel:       DefaultLogLevel,
		Flags:          Flags{Offset: -1},
	}
}

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRunner, DefaultRunner)
	v.SetDefault(KeyShell, DefaultShell)
	v.SetDefault(KeyBinDir, DefaultBinDir)
	v.SetDefault(KeyActivateScript, DefaultActivateScript)
	v.SetDefault(KeyRequireEnv, false)
	v.SetDefault(KeyEnvFiles, []string{})
	v.SetDefault(KeySourceExt, DefaultSourceExt)
	v.SetDefault(KeyPanelName, DefaultPanelName)
	v.SetDefault(KeyStorageDir, DefaultStorageDir())
	v.SetDefault(KeyStripColors, DefaultStripColors)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")
}

// NewViper returns a viper instance reading noserun.yaml and NOSERUN_* variables
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName("noserun")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/noserun")

	v.SetEnvPrefix("NOSERUN")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and fills a Config from v.
// Flags bound to v with BindPFlag take precedence over file and environment.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := New()
	cfg.Apply(v)
	return cfg, nil
}

// Apply copies every known key from v onto the config, keeping Flags untouched
func (c *Config) Apply(v *viper.Viper) {
	c.Runner = v.GetString(KeyRunner)
	c.Shell = v.GetString(KeyShell)
	c.BinDir = v.GetString(KeyBinDir)
	c.ActivateScript = v.GetString(KeyActivateScript)
	c.RequireEnv = v.GetBool(KeyRequireEnv)
	c.EnvFiles = v.GetStringSlice(KeyEnvFiles)
	c.SourceExt = v.GetString(KeySourceExt)
	c.PanelName = v.GetString(KeyPanelName)
	c.StorageDir = v.GetString(KeyStorageDir)
	c.StripColors = v.GetBool(KeyStripColors)
	c.LogLevel = v.GetString(KeyLogLevel)
	c.LogFile = v.GetString(KeyLogFile)
}

// GetPanelPath returns the file a named panel is persisted to.
// Resolves to an absolute path so run and show agree regardless of cwd.
func (c *Config) GetPanelPath(name string) string {
	p := filepath.Join(c.StorageDir, name+".json")
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetActivatePath returns the activation script path below an environment root
func (c *Config) GetActivatePath(root string) string {
	return filepath.Join(root, c.BinDir, c.ActivateScript)
}
