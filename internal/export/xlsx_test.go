package export_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/p-n-ai/bootcamp-landing/internal/catalog"
	"github.com/p-n-ai/bootcamp-landing/internal/export"
)

func TestSyllabusWorkbook(t *testing.T) {
	cat, err := catalog.New([]catalog.Course{{
		ID:          "a",
		Title:       "T",
		Description: "D",
		Topics: []catalog.Topic{
			{Title: "X", Materials: []catalog.Material{
				{Title: "M1", Duration: "08:12"},
				{Title: "M2", Duration: "04:41"},
			}},
			{Title: "Y", Materials: []catalog.Material{
				{Title: "M3", Duration: "60:00"},
			}},
		},
	}})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	course, _ := cat.Course("a")

	f, err := export.SyllabusWorkbook(course)
	if err != nil {
		t.Fatalf("SyllabusWorkbook() error = %v", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	f.Close()

	got, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer got.Close()

	rows, err := got.GetRows(export.SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	if rows[0][0] != "T" || rows[1][0] != "D" {
		t.Errorf("title/description rows = %v / %v", rows[0], rows[1])
	}

	want := [][]string{
		{"No", "Topik", "Materi", "Durasi"},
		{"1", "X", "M1", "08:12"},
		{"2", "X", "M2", "04:41"},
		{"3", "Y", "M3", "60:00"},
		{"", "", "Total", "1 Jam 12 Menit"},
	}
	table := rows[3:]
	if len(table) != len(want) {
		t.Fatalf("table rows = %v, want %v", table, want)
	}
	for i := range want {
		for j := range want[i] {
			var cell string
			if j < len(table[i]) {
				cell = table[i][j]
			}
			if cell != want[i][j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, cell, want[i][j])
			}
		}
	}
}
