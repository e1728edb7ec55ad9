package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleCSV = `Restaurant Name,Cuisines,Aggregate rating,Votes,Locality,Average Cost for two,Currency,Latitude,Longitude
Pasta Palace,"Italian, Pizza",4.2,100,Downtown,40,USD,28.61,77.23
Spice Route,"North Indian, Mughlai",4.5,230,Old Town,55,USD,,
Mystery Diner,,N/A,,,,,,
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestLoadCleansFields(t *testing.T) {
	path := writeFile(t, "data.csv", []byte(sampleCSV))

	table, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 records, got %d", len(table))
	}

	if table[0].Cuisines != "italian, pizza" {
		t.Errorf("cuisines not lowercased: %q", table[0].Cuisines)
	}
	if table[0].Rating != 4.2 || table[0].Votes != 100 {
		t.Errorf("rating/votes not parsed: %+v", table[0])
	}
	if table[0].Latitude == nil || *table[0].Latitude != 28.61 {
		t.Errorf("latitude not parsed: %+v", table[0].Latitude)
	}
	if table[0].AverageCost != "40" || table[0].Currency != "USD" {
		t.Errorf("pass-through fields changed: %+v", table[0])
	}

	if table[1].Latitude != nil || table[1].Longitude != nil {
		t.Errorf("empty coordinates should stay absent: %+v", table[1])
	}

	// Missing cuisines and an unparseable rating degrade to safe defaults.
	if table[2].Cuisines != "unknown" {
		t.Errorf("missing cuisines should become %q, got %q", "unknown", table[2].Cuisines)
	}
	if table[2].Rating != 0 {
		t.Errorf("unparseable rating should become 0, got %v", table[2].Rating)
	}
	if table[2].Votes != 0 {
		t.Errorf("missing votes should default to 0, got %d", table[2].Votes)
	}
}

func TestLoadLatin1Fallback(t *testing.T) {
	// 0xE9 is "é" in Latin-1 and an invalid byte sequence in UTF-8.
	raw := []byte("Restaurant Name,Cuisines,Aggregate rating\nCaf\xe9 Ol\xe9,French,4.1\n")
	path := writeFile(t, "latin1.csv", raw)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("expected 1 record, got %d", len(table))
	}
	if table[0].Name != "Café Olé" {
		t.Errorf("latin-1 bytes not transcoded: %q", table[0].Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("Restaurant Name,Aggregate rating\nPasta Palace,4.2\n"))

	_, err := Load(path)
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
}

func TestLoadMalformedStructure(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("Restaurant Name,Cuisines,Aggregate rating\nonly one field\nA,B,3.0,extra\n"))

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for inconsistent field counts")
	}
}

func TestLoadIdempotent(t *testing.T) {
	path := writeFile(t, "data.csv", []byte(sampleCSV))

	first, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("loading the same file twice produced different tables")
	}
}
