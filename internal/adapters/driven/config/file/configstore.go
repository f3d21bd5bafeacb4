// Package file stores converter defaults in a TOML file.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/splitter"
)

// Default values used when the config file does not set a key.
const (
	DefaultMaxBatchMB = 10
	DefaultOutDir     = "json_output"
)

// Settings are the persisted converter defaults. Zero values mean
// "not set"; resolve them through the accessor methods.
type Settings struct {
	// MaxChunkChars is the per-chunk character ceiling.
	MaxChunkChars int `toml:"max_chunk_chars,omitempty"`

	// MaxBatchMB is the batch size ceiling in megabytes.
	MaxBatchMB int `toml:"max_batch_mb,omitempty"`

	// OutDir is the default output directory.
	OutDir string `toml:"out_dir,omitempty"`

	// BuildIndex enables the searchable chunk index by default.
	BuildIndex bool `toml:"build_index,omitempty"`
}

// ConfigStore loads and persists Settings as TOML.
// Defaults to ~/.arquivos/config.toml.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	settings Settings
}

// NewConfigStore creates a config store under configDir.
// If configDir is empty, defaults to ~/.arquivos.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".arquivos")
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, err
	}

	s := &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}
	if err := s.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

// Load reads the config file. A missing file leaves defaults in place.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	var loaded Settings
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	s.settings = loaded
	return nil
}

// Save persists the current settings.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(s.settings)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0o600)
}

// Settings returns a copy of the current settings.
func (s *ConfigStore) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the settings and persists them.
func (s *ConfigStore) SetSettings(settings Settings) error {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return s.Save()
}

// ResolveMaxChunkChars resolves the per-chunk ceiling.
func (s Settings) ResolveMaxChunkChars() int {
	if s.MaxChunkChars > 0 {
		return s.MaxChunkChars
	}
	return splitter.DefaultMaxChunkChars
}

// ResolveMaxBatchMB resolves the batch ceiling in megabytes.
func (s Settings) ResolveMaxBatchMB() int {
	if s.MaxBatchMB > 0 {
		return s.MaxBatchMB
	}
	return DefaultMaxBatchMB
}

// ResolveOutDir resolves the output directory.
func (s Settings) ResolveOutDir() string {
	if s.OutDir != "" {
		return s.OutDir
	}
	return DefaultOutDir
}
