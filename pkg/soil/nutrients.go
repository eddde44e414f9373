package soil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type NPK struct {
	N float64 `json:"N"`
	P float64 `json:"P"`
	K float64 `json:"K"`
}

// NutrientTable maps a soil type label to typical N/P/K values.
type NutrientTable struct {
	m map[string]NPK
}

// DefaultNutrients carries the shipped soil reference values.
func DefaultNutrients() *NutrientTable {
	return &NutrientTable{m: map[string]NPK{
		"Alluvial": {N: 80, P: 45, K: 40},
		"Black":    {N: 60, P: 50, K: 55},
		"Clay":     {N: 45, P: 55, K: 50},
		"Loamy":    {N: 70, P: 50, K: 45},
		"Red":      {N: 35, P: 30, K: 25},
		"Sandy":    {N: 25, P: 20, K: 30},
	}}
}

// Lookup returns the mapped values, or (40,40,40) for an unmapped label.
func (t *NutrientTable) Lookup(soilType string) NPK {
	if v, ok := t.m[soilType]; ok {
		return v
	}
	return NPK{N: 40, P: 40, K: 40}
}

func (t *NutrientTable) Has(soilType string) bool {
	_, ok := t.m[soilType]
	return ok
}

// LoadNutrientTable reads a soil reference file (CSV or XLSX with columns
// soil_type, nitrogen, phosphorous, potassium) on top of the defaults.
func LoadNutrientTable(path string) (*NutrientTable, error) {
	t := DefaultNutrients()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		if err := t.loadCSV(path); err != nil {
			return nil, err
		}
	case ".xlsx":
		if err := t.loadXLSX(path); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("nutrient table: unsupported file %q", path)
	}
	return t, nil
}

func (t *NutrientTable) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}
	cols, err := nutrientColumns(head)
	if err != nil {
		return err
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		t.addRow(rec, cols)
	}
	return nil
}

func (t *NutrientTable) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return nil
	}
	cols, err := nutrientColumns(rows[0])
	if err != nil {
		return err
	}
	for _, rec := range rows[1:] {
		t.addRow(rec, cols)
	}
	return nil
}

type colIdx struct{ soil, n, p, k int }

func nutrientColumns(head []string) (colIdx, error) {
	norm := func(s string) string {
		s = strings.TrimPrefix(strings.TrimSpace(s), "\ufeff")
		return strings.ToLower(strings.ReplaceAll(s, "_", ""))
	}
	idx := colIdx{soil: -1, n: -1, p: -1, k: -1}
	for i, h := range head {
		switch norm(h) {
		case "soiltype", "soil":
			idx.soil = i
		case "nitrogen", "n":
			idx.n = i
		case "phosphorous", "phosphorus", "p":
			idx.p = i
		case "potassium", "k":
			idx.k = i
		}
	}
	if idx.soil == -1 || idx.n == -1 || idx.p == -1 || idx.k == -1 {
		return idx, fmt.Errorf("nutrient table: missing columns, got headers %v", head)
	}
	return idx, nil
}

func (t *NutrientTable) addRow(rec []string, cols colIdx) {
	get := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	label := get(cols.soil)
	if label == "" {
		return
	}
	n, _ := strconv.ParseFloat(get(cols.n), 64)
	p, _ := strconv.ParseFloat(get(cols.p), 64)
	k, _ := strconv.ParseFloat(get(cols.k), 64)
	t.m[label] = NPK{N: n, P: p, K: k}
}
