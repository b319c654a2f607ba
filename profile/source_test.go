package profile

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name failed: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "profiles.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestLoadExcelLookup(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"user_id", "gender", "age", "sports"},
		{"u1", "男", 27, "骑行"},
		{"u2", "女", nil, ""},
	})

	src, err := LoadExcel(path)
	if err != nil {
		t.Fatalf("LoadExcel failed: %v", err)
	}
	if src.Len() != 2 {
		t.Fatalf("expected 2 profiles, got %d", src.Len())
	}

	attrs := src.Lookup("u1")
	if attrs["gender"] != "男" || attrs["sports"] != "骑行" {
		t.Fatalf("unexpected attrs: %+v", attrs)
	}

	// Empty cells are dropped, like the source rows they come from.
	attrs = src.Lookup("u2")
	if _, ok := attrs["age"]; ok {
		t.Fatalf("empty age should be dropped: %+v", attrs)
	}
	if _, ok := attrs["sports"]; ok {
		t.Fatalf("empty sports should be dropped: %+v", attrs)
	}
}

func TestLookupUnknownUser(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"user_id", "gender"},
		{"u1", "男"},
	})

	src, err := LoadExcel(path)
	if err != nil {
		t.Fatalf("LoadExcel failed: %v", err)
	}

	attrs := src.Lookup("missing")
	if attrs == nil || len(attrs) != 0 {
		t.Fatalf("expected empty map, got %+v", attrs)
	}
}

func TestLoadExcelMissingIDColumn(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"name", "gender"},
		{"u1", "男"},
	})

	if _, err := LoadExcel(path); err == nil {
		t.Fatalf("expected error for missing user_id column")
	}
}
