package tickloop

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file-backed counterpart of the Builder settings.
type Config struct {
	Title string      `yaml:"title"`
	Video VideoConfig `yaml:"video"`
}

// VideoConfig configures the video subsystem.
type VideoConfig struct {
	Enabled bool  `yaml:"enabled"`
	Width   int32 `yaml:"width"`
	Height  int32 `yaml:"height"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML configuration bytes. Unknown fields are an error;
// an empty document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("yaml decode: %w", err)
	}
	return cfg, nil
}
