package catalog

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

	"farmconnect/entities"
)

// LoadFile reads a catalog sheet (.csv or .xlsx). Rows without a key or
// title are skipped; an empty result is an error so callers keep Default.
func LoadFile(path string) ([]entities.ServiceCatalogItem, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("catalog: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	items, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return items, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("catalog: workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func normHeader(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "\uFEFF")
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func parseRows(rows [][]string) ([]entities.ServiceCatalogItem, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty sheet")
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cKey := findAny("key", "service_key", "id")
	cTitle := findAny("title", "service_name", "name")
	cDesc := findAny("description", "desc", "notes")
	cPrice := findAny("price", "price_value", "rate", "amount")
	cLabel := findAny("price_label", "label")
	cDays := findAny("days", "days_until_available", "lead_days")
	if cKey == -1 || cTitle == -1 {
		return nil, fmt.Errorf("missing required columns, found %v; need at least key, title", rows[0])
	}

	var out []entities.ServiceCatalogItem
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		key, title := get(cKey), get(cTitle)
		if key == "" || title == "" {
			continue
		}
		price, _ := strconv.ParseFloat(get(cPrice), 64)
		days, err := strconv.Atoi(get(cDays))
		if err != nil || days < 0 {
			days = 2
		}
		label := get(cLabel)
		if label == "" {
			label = "$" + strconv.FormatFloat(price, 'f', -1, 64)
		}
		out = append(out, item(key, title, get(cDesc), label, price, days))
	}
	if len(out) == 0 {
		return nil, errors.New("no usable rows")
	}
	return out, nil
}
