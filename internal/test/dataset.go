package test

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// NamesHeader mirrors the header of the popular baby names dataset.
var NamesHeader = []string{"Year of Birth", "Gender", "Ethnicity", "Child's First Name", "Count", "Rank"}

// NameRows returns n deterministic data rows. Row i carries the name "Name{i}"
// so tests can tell rows apart by index.
func NameRows(n int) [][]string {
	rows := make([][]string, n)

	for i := 0; i < n; i++ {
		rows[i] = []string{
			fmt.Sprintf("%d", 2011+i%6),
			[]string{"FEMALE", "MALE"}[i%2],
			"HISPANIC",
			fmt.Sprintf("Name%d", i),
			fmt.Sprintf("%d", 100+i),
			fmt.Sprintf("%d", i+1),
		}
	}

	return rows
}

// NamesCSV encodes the header followed by n data rows.
func NamesCSV(t testing.TB, n int) []byte {
	var buffer bytes.Buffer

	writer := csv.NewWriter(&buffer)

	if err := writer.Write(NamesHeader); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}

	if err := writer.WriteAll(NameRows(n)); err != nil {
		t.Fatalf("failed to write rows: %v", err)
	}

	return buffer.Bytes()
}

// WriteFile writes data to name inside a fresh temporary directory and returns
// the directory.
func WriteFile(t testing.TB, name string, data []byte) string {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}

	return dir
}

// WriteNamesCSV writes a names fixture with n data rows and returns its directory.
func WriteNamesCSV(t testing.TB, name string, n int) string {
	return WriteFile(t, name, NamesCSV(t, n))
}
