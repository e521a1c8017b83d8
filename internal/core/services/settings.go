package services

import (
	"fmt"

	"github.com/ankr-labs/eduingest/internal/core/ports/driven"
)

// Config keys for settings storage.
const (
	keyDataDir    = "storage.data_dir"
	keyOutputDir  = "ingest.output_dir"
	keyExtensions = "ingest.extensions"
)

// defaultExtensions are the file extensions ingested when none are
// configured.
var defaultExtensions = []string{".pdf", ".txt"}

// Settings are the resolved application settings.
type Settings struct {
	// DataDir is the ledger database directory. Empty means the
	// storage adapter's default.
	DataDir string

	// OutputDir is where extraction artifacts are written. Empty
	// disables artifact output.
	OutputDir string

	// Extensions are the file extensions considered for ingestion.
	Extensions []string
}

// SettingsService resolves application settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, applying defaults for
// unset keys.
func (s *SettingsService) Get() Settings {
	settings := Settings{
		DataDir:    s.configStore.GetString(keyDataDir),
		OutputDir:  s.configStore.GetString(keyOutputDir),
		Extensions: s.configStore.GetStringSlice(keyExtensions),
	}
	if len(settings.Extensions) == 0 {
		settings.Extensions = defaultExtensions
	}
	return settings
}

// SetOutputDir stores and persists the artifact output directory.
func (s *SettingsService) SetOutputDir(dir string) error {
	if err := s.configStore.Set(keyOutputDir, dir); err != nil {
		return fmt.Errorf("setting output dir: %w", err)
	}
	return s.configStore.Save()
}

// SetDataDir stores and persists the ledger database directory.
func (s *SettingsService) SetDataDir(dir string) error {
	if err := s.configStore.Set(keyDataDir, dir); err != nil {
		return fmt.Errorf("setting data dir: %w", err)
	}
	return s.configStore.Save()
}
