package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pairwise/catalog"
)

// missingTokens are cell spellings read as NaN.
var missingTokens = map[string]struct{}{
	"": {}, "na": {}, "nan": {}, "null": {}, "none": {},
}

// ReadCSV parses a CSV whose header names every catalog column (any order;
// extra columns are ignored). Cells land in catalog column order.
// Numerical cells parse as float64; categorical cells get integer codes in
// first-seen order per column. Missing tokens become NaN.
func ReadCSV(r io.Reader, cat *catalog.Catalog) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: header: %w", err)
	}

	// catalog column -> csv field position
	pos := make([]int, cat.NumColumns())
	for i := range pos {
		pos[i] = -1
	}
	for field, name := range header {
		ix, lerr := cat.Lookup(strings.TrimSpace(name))
		if lerr != nil {
			continue
		}
		pos[ix] = field
	}
	for i, p := range pos {
		if p < 0 {
			name, _ := cat.Name(catalog.Index(i))
			return nil, fmt.Errorf("ReadCSV: column %q missing from header: %w", name, ErrShape)
		}
	}

	codes := make([]map[string]float64, cat.NumColumns())
	var rows [][]float64
	for line := 2; ; line++ {
		rec, rerr := cr.Read()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: %w", line, rerr)
		}
		row := make([]float64, cat.NumColumns())
		for col, field := range pos {
			row[col], err = parseCell(cat, col, rec[field], codes)
			if err != nil {
				return nil, fmt.Errorf("ReadCSV: line %d column %d: %w", line, col, err)
			}
		}
		rows = append(rows, row)
	}
	if len(rows) != cat.NumRows() {
		return nil, fmt.Errorf("ReadCSV: %d rows, catalog says %d: %w", len(rows), cat.NumRows(), ErrShape)
	}

	return New(rows)
}

func parseCell(cat *catalog.Catalog, col int, raw string, codes []map[string]float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if _, miss := missingTokens[strings.ToLower(raw)]; miss {
		return math.NaN(), nil
	}
	typ, err := cat.Type(catalog.Index(col))
	if err != nil {
		return 0, err
	}
	if typ == catalog.Numerical {
		return strconv.ParseFloat(raw, 64)
	}
	if codes[col] == nil {
		codes[col] = make(map[string]float64)
	}
	code, ok := codes[col][raw]
	if !ok {
		code = float64(len(codes[col]))
		codes[col][raw] = code
	}

	return code, nil
}

// LoadCSV opens path and runs ReadCSV.
func LoadCSV(path string, cat *catalog.Catalog) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	return ReadCSV(f, cat)
}
