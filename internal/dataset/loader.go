package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const unknownCuisine = "unknown"

var ErrMissingColumns = errors.New("dataset is missing required columns")

// Source column names. Only the first three are required; the rest are
// carried through for display when present.
const (
	colName      = "Restaurant Name"
	colCuisines  = "Cuisines"
	colRating    = "Aggregate rating"
	colVotes     = "Votes"
	colLocality  = "Locality"
	colCost      = "Average Cost for two"
	colCurrency  = "Currency"
	colLatitude  = "Latitude"
	colLongitude = "Longitude"
)

// Load reads and cleans the restaurant CSV at path. The file is decoded as
// UTF-8, falling back to Latin-1 when the bytes are not valid UTF-8.
// Cuisines are lowercased with missing values replaced by "unknown", and
// ratings are coerced to float64 with unparseable values becoming 0.0.
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	if !utf8.Valid(raw) {
		raw, err = charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decode dataset: %w", err)
		}
	}

	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{colName, colCuisines, colRating} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumns, name)
		}
	}

	table := make(Table, 0, len(rows)-1)
	for _, row := range rows[1:] {
		table = append(table, buildRecord(row, cols))
	}
	return table, nil
}

func buildRecord(row []string, cols map[string]int) Restaurant {
	rec := Restaurant{
		Name:        field(row, cols, colName),
		Cuisines:    cleanCuisines(field(row, cols, colCuisines)),
		Rating:      cleanRating(field(row, cols, colRating)),
		Locality:    field(row, cols, colLocality),
		AverageCost: field(row, cols, colCost),
		Currency:    field(row, cols, colCurrency),
	}
	if v, err := strconv.Atoi(field(row, cols, colVotes)); err == nil {
		rec.Votes = v
	}
	rec.Latitude = floatField(row, cols, colLatitude)
	rec.Longitude = floatField(row, cols, colLongitude)
	return rec
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cleanCuisines(v string) string {
	if v == "" {
		return unknownCuisine
	}
	return strings.ToLower(v)
}

// cleanRating never lets NaN or Inf through; ParseFloat accepts both.
func cleanRating(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func floatField(row []string, cols map[string]int, name string) *float64 {
	v := field(row, cols, name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
