// internal/config/writer.go
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Marshal renders cfg as TOML with durations in their string form.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(ToFile(cfg)); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes cfg to path with a header comment, creating parent
// directories. An existing file is only replaced when overwrite is set.
func WriteFile(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	body, err := Marshal(cfg)
	if err != nil {
		return err
	}

	var content bytes.Buffer
	content.WriteString("# questctl configuration file\n")
	content.WriteString("# Priority: default < questctl.toml < QUESTLINE_* environment < CLI flag\n")
	fmt.Fprintf(&content, "# Location: %s\n\n", path)
	content.Write(body)

	if err := os.WriteFile(path, content.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
