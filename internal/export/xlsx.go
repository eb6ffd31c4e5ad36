// Package export renders a course syllabus as a downloadable spreadsheet.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/p-n-ai/bootcamp-landing/internal/catalog"
)

// SheetName is the worksheet holding the syllabus.
const SheetName = "Silabus"

// headerRow is where the syllabus table starts; rows above hold the course
// title and description.
const headerRow = 4

// SyllabusWorkbook builds a workbook listing every material of course with
// its topic and duration, followed by the total. The caller must Close it.
func SyllabusWorkbook(course catalog.Course) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	if err := fill(f, course); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, course catalog.Course) error {
	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(SheetName, cell, v)
	}

	if err := set(1, 1, course.Title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if err := set(1, 2, course.Description); err != nil {
		return fmt.Errorf("writing description: %w", err)
	}

	for col, h := range []string{"No", "Topik", "Materi", "Durasi"} {
		if err := set(col+1, headerRow, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	row := headerRow
	for _, topic := range course.Topics {
		for _, m := range topic.Materials {
			row++
			values := []any{row - headerRow, topic.Title, m.Title, m.Duration}
			for col, v := range values {
				if err := set(col+1, row, v); err != nil {
					return fmt.Errorf("writing row %d: %w", row, err)
				}
			}
		}
	}

	row++
	if err := set(3, row, "Total"); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	if err := set(4, row, course.TotalLabel()); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "A1", bold); err != nil {
		return fmt.Errorf("styling title: %w", err)
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("D%d", headerRow), bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), bold); err != nil {
		return fmt.Errorf("styling total: %w", err)
	}

	if err := f.SetColWidth(SheetName, "B", "B", 24); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "C", "C", 56); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	return nil
}
