// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/tesso57/availnot/internal/application/settings"
	"gopkg.in/yaml.v3"
)

const appName = "availnot"

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".config", appName, "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := loadEnvFile(filepath.Join(filepath.Dir(configPath), ".env")); err != nil {
		return nil, err
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	var options []kong.Option

	// Only add configuration loader if file exists
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	store.Settings = cfg
	store.Settings.Identity.ClientID = strings.TrimSpace(store.Settings.Identity.ClientID)
	store.Settings.Identity.Scopes = normalizeScopes(store.Settings.Identity.Scopes)
	store.Settings.Calendar.Source = strings.ToLower(strings.TrimSpace(store.Settings.Calendar.Source))
	if err := validate(store.Settings); err != nil {
		return nil, err
	}

	if strings.TrimSpace(store.Settings.SessionFile) == "" {
		store.Settings.SessionFile = filepath.Join(defaultDataHome(), appName, "session.db")
	}
	if strings.TrimSpace(store.Settings.LogFile) == "" {
		store.Settings.LogFile = filepath.Join(defaultDataHome(), appName, appName+".log")
	}

	// Save defaults if new file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the file the settings are persisted to.
func (s *Store) Path() string {
	return s.configPath
}

// loadEnvFile exports variables from an optional .env file. Variables that
// are already set are kept.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func validate(cfg settings.Settings) error {
	switch cfg.Calendar.Source {
	case settings.CalendarSourceGraph:
	case settings.CalendarSourceICS:
		if strings.TrimSpace(cfg.Calendar.ICSURL) == "" {
			return fmt.Errorf("calendar.ics_url is required when calendar.source is %q", settings.CalendarSourceICS)
		}
	default:
		return fmt.Errorf("invalid calendar source %q", cfg.Calendar.Source)
	}
	if cfg.Graph.EventLimit < 1 {
		return fmt.Errorf("graph.event_limit must be positive, got %d", cfg.Graph.EventLimit)
	}
	if _, err := cfg.Location(); err != nil {
		return err
	}
	return nil
}

// normalizeScopes accepts both list entries and space separated scope strings.
func normalizeScopes(scopes []string) []string {
	if len(scopes) == 0 {
		return scopes
	}
	normalized := make([]string, 0, len(scopes))
	seen := make(map[string]struct{}, len(scopes))
	for _, scope := range scopes {
		for item := range strings.FieldsSeq(scope) {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			normalized = append(normalized, item)
		}
	}
	return normalized
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return dataHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}
			if v, ok := lookupNested(values, strings.Split(name, ".")); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func lookupNested(values map[string]any, parts []string) (any, bool) {
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for i, part := range parts {
		if i == len(parts)-1 {
			v, ok := curr[part]
			return v, ok
		}
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	return nil, false
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
