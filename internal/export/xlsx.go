package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"simsea/internal/models"
)

// XLSX writes records to a single-sheet workbook named "projects".
func XLSX(records []models.ProjectRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := Header()
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	for i := range records {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := Cells(&records[i])
		if err := f.SetSheetRow(SheetName, cellName, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
