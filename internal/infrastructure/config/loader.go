package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jmajeed/juno/assets"
	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/pkg/filesystem"
	"github.com/jmajeed/juno/internal/ports"
)

// FileLoader loads YAML settings and the command table from ~/.juno
// (overridable via JUNO_CONFIG and JUNO_COMMANDS). Missing files are created
// from the embedded defaults on first load.
type FileLoader struct {
	configPath   string
	commandsPath string
}

// NewFileLoader builds a loader. Empty paths fall back to the defaults.
func NewFileLoader(configPath, commandsPath string) *FileLoader {
	return &FileLoader{configPath: configPath, commandsPath: commandsPath}
}

// LoadEnv reads a .env file when present. API keys are resolved from the
// environment, never stored in config files.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	raw, err := readOrSeed(l.resolveConfigPath(), assets.DefaultConfigYAML)
	if err != nil {
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Commands implements ports.CommandTableProvider.
func (l *FileLoader) Commands(context.Context) (domain.CommandTable, error) {
	raw, err := readOrSeed(l.resolveCommandsPath(), assets.DefaultCommandsYAML)
	if err != nil {
		return domain.CommandTable{}, err
	}

	var table domain.CommandTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return domain.CommandTable{}, err
	}
	return table, nil
}

// ConfigPath returns the resolved settings path.
func (l *FileLoader) ConfigPath() string {
	return l.resolveConfigPath()
}

// CommandsPath returns the resolved command table path.
func (l *FileLoader) CommandsPath() string {
	return l.resolveCommandsPath()
}

// WriteDefaults re-seeds both files from the embedded defaults.
func (l *FileLoader) WriteDefaults() error {
	for path, raw := range map[string][]byte{
		l.resolveConfigPath():   assets.DefaultConfigYAML,
		l.resolveCommandsPath(): assets.DefaultCommandsYAML,
	} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return err
		}
	}
	return nil
}

func readOrSeed(path string, defaults []byte) ([]byte, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, defaults, 0o600); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, err
	}
	return data, nil
}

func (l *FileLoader) resolveConfigPath() string {
	if l.configPath != "" {
		return l.configPath
	}
	if custom := os.Getenv("JUNO_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHome(), ".juno", "config.yaml")
}

func (l *FileLoader) resolveCommandsPath() string {
	if l.commandsPath != "" {
		return l.commandsPath
	}
	if custom := os.Getenv("JUNO_COMMANDS"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHome(), ".juno", "commands.yaml")
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Assistant.Name == "" {
		cfg.Assistant.Name = "Juno"
	}
	if cfg.Assistant.WakeWord == "" {
		cfg.Assistant.WakeWord = "hey juno"
	}
	if cfg.Classifier.ConfidenceThreshold == 0 {
		cfg.Classifier.ConfidenceThreshold = 0.5
	}
	if cfg.Listening.WakeTimeoutSeconds == 0 {
		cfg.Listening.WakeTimeoutSeconds = 10
	}
	if cfg.Listening.WakePhraseSeconds == 0 {
		cfg.Listening.WakePhraseSeconds = 5
	}
	if cfg.Listening.CommandTimeoutSeconds == 0 {
		cfg.Listening.CommandTimeoutSeconds = 5
	}
	if cfg.Listening.CommandPhraseSeconds == 0 {
		cfg.Listening.CommandPhraseSeconds = 10
	}
	if cfg.Memory.RetentionDays == 0 {
		cfg.Memory.RetentionDays = 30
	}
	if cfg.Memory.DataDir == "" {
		cfg.Memory.DataDir = filepath.Join(filesystem.UserHome(), ".juno", "data")
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHome(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
var _ ports.CommandTableProvider = (*FileLoader)(nil)
