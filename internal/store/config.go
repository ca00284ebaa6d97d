package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nakachan-ing/kanban-cli/internal/model"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

func GetConfigPath() (string, error) {
	// Check if the environment variable `KANBAN_CONFIG` is set
	if customConfig := os.Getenv("KANBAN_CONFIG"); customConfig != "" {
		return customConfig, nil
	}

	var configPath string

	switch runtime.GOOS {
	case "windows":
		// Use `APPDATA\kanban-cli\config.yaml` if available
		appData := os.Getenv("APPDATA")
		if appData != "" {
			configPath = filepath.Join(appData, "kanban-cli", "config.yaml")
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to determine home directory: %w", err)
			}
			configPath = filepath.Join(homeDir, "AppData", "Roaming", "kanban-cli", "config.yaml")
		}

	default: // macOS / Linux
		configDir, err := os.UserConfigDir()
		if err != nil {
			homeDir, homeErr := os.UserHomeDir()
			if homeErr != nil {
				return "", fmt.Errorf("failed to determine home directory: %w", homeErr)
			}
			configPath = filepath.Join(homeDir, ".kanban-cli", "config.yaml")
			log.Warnf("failed to get user config directory, using fallback: %s", configPath)
		} else {
			configPath = filepath.Join(configDir, "kanban-cli", "config.yaml")
		}
	}

	return configPath, nil
}

// Expand `~` to the home directory (Windows included)
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Warnf("failed to get home directory: %v", err)
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// underDataDir resolves relative file names against the data directory.
func underDataDir(dataDir, path string) string {
	if path == "" || path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dataDir, path)
}

// LoadConfig reads config.yaml. A missing file is not an error: the
// defaults are used so the board works before `kanban init`.
func LoadConfig() (*model.Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads configPath and resolves its paths for use at runtime.
func LoadConfigFile(configPath string) (*model.Config, error) {
	config, err := ReadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	resolved := ResolvePaths(*config)
	return &resolved, nil
}

// LoadRawConfig reads config.yaml without resolving any path. It is the
// form to edit and hand back to SaveConfig.
func LoadRawConfig() (*model.Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return ReadConfigFile(configPath)
}

func ReadConfigFile(configPath string) (*model.Config, error) {
	config := model.DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		log.Debugf("config file %s not found, using defaults", configPath)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file (%s): %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config (%s): %w", configPath, err)
	}
	return &config, nil
}

// ResolvePaths expands `~` and places relative log and storage paths under
// the data directory. The input is not modified.
func ResolvePaths(config model.Config) model.Config {
	config.DataDir = expandHomeDir(config.DataDir)
	config.LogFile = underDataDir(config.DataDir, expandHomeDir(config.LogFile))
	config.Storage.Path = underDataDir(config.DataDir, expandHomeDir(config.Storage.Path))
	return config
}

func validateConfig(config model.Config) error {
	if len(config.Board.Columns) == 0 {
		return fmt.Errorf("board.columns must not be empty")
	}
	seen := map[string]bool{}
	for _, column := range config.Board.Columns {
		if column.ID == "" {
			return fmt.Errorf("board.columns: column id must not be empty")
		}
		if seen[column.ID] {
			return fmt.Errorf("board.columns: duplicate column id %q", column.ID)
		}
		seen[column.ID] = true
	}
	if !seen[config.Board.DefaultStatus] {
		return fmt.Errorf("board.default_status %q is not a column", config.Board.DefaultStatus)
	}
	if config.Storage.Key == "" {
		return fmt.Errorf("storage.key must not be empty")
	}
	return nil
}

func SaveConfig(config model.Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configData, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	if err := os.WriteFile(configPath, configData, 0644); err != nil {
		return fmt.Errorf("failed to write config file (%s): %w", configPath, err)
	}
	return nil
}
