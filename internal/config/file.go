package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appDir   = "kybe-paste-manager"
	fileName = "config.yaml"
)

// File is the persisted, user-editable configuration.
// Each paste service owns one section.
type File struct {
	PastebinCom ServiceConfig `yaml:"pastebin_com"`
}

// ServiceConfig is the section shared by every paste service.
type ServiceConfig struct {
	Enable bool    `yaml:"enable"`
	Key    *string `yaml:"key"` // nil when unset
}

// APIKey returns the key as written and whether it is usable, i.e. set and
// not blank once trimmed.
func (s ServiceConfig) APIKey() (string, bool) {
	if s.Key == nil {
		return "", false
	}
	return *s.Key, strings.TrimSpace(*s.Key) != ""
}

// Default returns the configuration written on first run.
func Default() *File {
	empty := ""
	return &File{
		PastebinCom: ServiceConfig{
			Enable: false,
			Key:    &empty,
		},
	}
}

// DefaultPath is <user config dir>/kybe-paste-manager/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no valid home directory path could be retrieved from the operating system: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads the config at path. A missing file is created with Default()
// and the defaults are returned.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return create(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("config path %s exists but is not a file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a config document. Sections absent from data keep their
// defaults; unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config (invalid config file): %w", err)
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func create(path string) (*File, error) {
	cfg := Default()

	data, err := Marshal(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := writeAtomic(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write default config: %w", err)
	}

	return cfg, nil
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over path, so readers never observe a partial file.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
