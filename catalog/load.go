package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColumnSpec describes one column in a catalog file.
type ColumnSpec struct {
	Name string     `json:"name" yaml:"name"`
	Type ColumnType `json:"type,omitempty" yaml:"type,omitempty"`
}

// File is the on-disk catalog shape. Either Columns (ordered) or the raw
// NameToIdx/IdxToName pair must be set; Columns wins when both are.
type File struct {
	Columns   []ColumnSpec      `json:"columns,omitempty" yaml:"columns,omitempty"`
	NameToIdx map[string]int    `json:"name_to_idx,omitempty" yaml:"name_to_idx,omitempty"`
	IdxToName map[string]string `json:"idx_to_name,omitempty" yaml:"idx_to_name,omitempty"`
	NumRows   int               `json:"num_rows" yaml:"num_rows"`
}

// Build turns the decoded file into a Catalog.
func (f *File) Build() (*Catalog, error) {
	if len(f.Columns) == 0 {
		return FromMaps(f.NameToIdx, f.IdxToName, f.NumRows)
	}
	names := make([]string, len(f.Columns))
	types := make([]ColumnType, len(f.Columns))
	for i, col := range f.Columns {
		names[i] = col.Name
		types[i] = col.Type
		if types[i] == "" {
			types[i] = Numerical
		}
	}

	return New(names, f.NumRows, WithColumnTypes(types...))
}

// Decode parses a catalog document; format is "json" or "yaml".
func Decode(data []byte, format string) (*Catalog, error) {
	var f File
	switch format {
	case "json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode catalog json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode catalog yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode catalog: unsupported format %q", format)
	}

	return f.Build()
}

// Load reads a catalog from path; the extension picks the decoder
// (.json, otherwise YAML).
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}

	return Decode(b, format)
}
