package textfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ReadConfig reads a YAML config file.
func ReadConfig(path string) (Config, error) {
	return ReadConfigFS(afero.NewOsFs(), path)
}

// ReadConfigFS is [ReadConfig] on an arbitrary filesystem. Filesystem errors
// are returned unchanged.
func ReadConfigFS(fsys afero.Fs, path string) (Config, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a YAML config document from r. An empty document
// yields [DefaultConfig]. Malformed YAML fails with [ErrInvalidConfig].
func DecodeConfig(r io.Reader) (Config, error) {
	// A null document never reaches UnmarshalYAML and leaves cfg as is.
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		if errors.Is(err, ErrInvalidConfig) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg to path as YAML, replacing any existing file.
func WriteConfig(path string, cfg Config) error {
	return WriteConfigFS(afero.NewOsFs(), path, cfg)
}

// WriteConfigFS is [WriteConfig] on an arbitrary filesystem.
func WriteConfigFS(fsys afero.Fs, path string, cfg Config) error {
	// Encode first so an invalid config never truncates the file.
	data, err := MarshalConfig(cfg)
	if err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, data, 0o644)
}

// EncodeConfig writes cfg to w as a YAML document with two-space indentation.
func EncodeConfig(w io.Writer, cfg Config) error {
	m, err := cfg.ToMap()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}

// MarshalConfig returns the YAML encoding of cfg.
func MarshalConfig(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeConfig(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
