package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/pairwise"
)

// report is the printed shape of a pipeline result.
type report struct {
	RequestID   string               `json:"request_id" yaml:"request_id"`
	Names       []string             `json:"names,omitempty" yaml:"names,omitempty"`
	Rows        []catalog.Index      `json:"rows,omitempty" yaml:"rows,omitempty"`
	Permutation []catalog.Local      `json:"permutation,omitempty" yaml:"permutation,omitempty"`
	Matrix      [][]float64          `json:"matrix" yaml:"matrix"`
	Components  []pairwise.Component `json:"components" yaml:"components"`
}

func columnReport(res *pairwise.ColumnResult) report {
	return report{
		RequestID:   res.RequestID,
		Names:       res.Names,
		Permutation: res.Permutation,
		Matrix:      res.Matrix.ToRows(),
		Components:  res.Components,
	}
}

func rowReport(res *pairwise.RowResult) report {
	return report{
		RequestID:  res.RequestID,
		Rows:       res.Rows,
		Matrix:     res.Matrix.ToRows(),
		Components: res.Components,
	}
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
