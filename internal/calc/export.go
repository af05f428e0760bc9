package calc

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportXLSX writes one sheet per report. Money and percent values stay
// numeric with a number format applied, so the workbook can be recalculated.
func ExportXLSX(reports ...Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, fmt.Errorf("export: no reports")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("export: money style: %w", err)
	}
	pct, err := f.NewStyle(&excelize.Style{NumFmt: 10}) // 0.00%
	if err != nil {
		return nil, fmt.Errorf("export: percent style: %w", err)
	}

	for i, rep := range reports {
		sheet := sheetName(rep.Title, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("export: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("export: new sheet %q: %w", sheet, err)
		}

		if err := f.SetSheetRow(sheet, "A1", &[]any{"Item", "Value"}); err != nil {
			return nil, fmt.Errorf("export: header row: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", "B1", bold); err != nil {
			return nil, fmt.Errorf("export: header style: %w", err)
		}

		for j, row := range rep.Rows {
			r := j + 2
			labelCell, _ := excelize.CoordinatesToCellName(1, r)
			valueCell, _ := excelize.CoordinatesToCellName(2, r)

			if err := f.SetCellValue(sheet, labelCell, row.Label); err != nil {
				return nil, fmt.Errorf("export: %s: %w", labelCell, err)
			}

			var value any = row.Value
			style := 0
			switch v := row.Value.(type) {
			case Money:
				value, style = float64(v), money
			case Percent:
				value, style = float64(v), pct
			case bool:
				value = FormatValue(v)
			}
			if err := f.SetCellValue(sheet, valueCell, value); err != nil {
				return nil, fmt.Errorf("export: %s: %w", valueCell, err)
			}
			if style != 0 {
				if err := f.SetCellStyle(sheet, valueCell, valueCell, style); err != nil {
					return nil, fmt.Errorf("export: %s style: %w", valueCell, err)
				}
			}
		}
		if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
			return nil, fmt.Errorf("export: column width: %w", err)
		}
		if err := f.SetColWidth(sheet, "B", "B", 22); err != nil {
			return nil, fmt.Errorf("export: column width: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetName keeps titles within Excel's 31 character limit and unique.
func sheetName(title string, i int) string {
	name := title
	if name == "" {
		name = "Report"
	}
	if len(name) > 28 {
		name = name[:28]
	}
	if i > 0 {
		name = fmt.Sprintf("%s %d", name, i+1)
	}
	return name
}
