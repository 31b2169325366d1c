package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/xcpp-labs/xcpp/internal/branding"
)

const fileType = "yaml"

// ErrNotFound is returned by Delete when no record has been stored.
var ErrNotFound = errors.New("no stored configuration")

// Record holds the persisted defaults used by "new" when flags are omitted.
type Record struct {
	Std           string `yaml:"std" mapstructure:"std"`
	ToolchainPath string `yaml:"toolchain_path" mapstructure:"toolchain_path"`
}

// IsZero reports whether neither field is set.
func (r Record) IsZero() bool {
	return r.Std == "" && r.ToolchainPath == ""
}

// Dir returns the directory holding the config file. It checks the
// XCPP_CONFIG_DIR environment variable first, then falls back to
// <user config dir>/xcpp.
func Dir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, branding.ConfigDir()), nil
}

// FilePath returns the full path to the config file.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, branding.ConfigFile()), nil
}

// Store reads and writes the record at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore returns a Store at FilePath.
func DefaultStore() (*Store, error) {
	path, err := FilePath()
	if err != nil {
		return nil, err
	}
	return NewStore(path), nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored record, or a zero Record if none has been saved.
func (s *Store) Load() (Record, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("reading config %s: %w", s.path, err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return Record{}, fmt.Errorf("reading config %s: %w", s.path, err)
	}

	var rec Record
	if err := v.Unmarshal(&rec); err != nil {
		return Record{}, fmt.Errorf("parsing config %s: %w", s.path, err)
	}
	return rec, nil
}

// Save writes rec, replacing any previous record. The file is written to a
// temporary name in the same directory and renamed into place.
func (s *Store) Save(rec Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary config file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing config %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing config %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing config %s: %w", s.path, err)
	}
	return nil
}

// Delete removes the stored record. It returns an error wrapping ErrNotFound
// if nothing is stored.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("deleting %s: %w", s.path, ErrNotFound)
		}
		return fmt.Errorf("deleting %s: %w", s.path, err)
	}
	return nil
}
