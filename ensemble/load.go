package ensemble

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses an ensemble document; format is "json" or "yaml".
func Decode(data []byte, format string) (*Ensemble, error) {
	var e Ensemble
	switch format {
	case "json":
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("decode ensemble json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("decode ensemble yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode ensemble: unsupported format %q", format)
	}
	if err := e.Check(); err != nil {
		return nil, fmt.Errorf("decode ensemble: %w", err)
	}

	return &e, nil
}

// Load reads an ensemble from path (.json, otherwise YAML).
func Load(path string) (*Ensemble, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ensemble: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}

	return Decode(b, format)
}
