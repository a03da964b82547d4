package excel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"claimstats/domain/report"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is the worksheet name limit imposed by the xlsx format
const maxSheetName = 31

// Sheet is one named table of the report workbook
type Sheet struct {
	Name  string
	Table report.Table
}

// SheetName derives a worksheet name from an artifact file name
func SheetName(artifact string) string {
	name := strings.TrimSuffix(artifact, ".csv")
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

// WriteWorkbook renders the sheets into an xlsx document, one worksheet per
// table in the given order. Cells that parse as finite numbers are written
// as numbers, everything else as text.
func WriteWorkbook(sheets []Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	keepDefault := false
	for _, s := range sheets {
		if s.Name == DefaultSheet {
			keepDefault = true
		}
		if _, err := f.NewSheet(s.Name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", s.Name, err)
		}
		if err := writeRows(f, s); err != nil {
			return nil, err
		}
	}

	if len(sheets) > 0 {
		if !keepDefault {
			if err := f.DeleteSheet(DefaultSheet); err != nil {
				return nil, fmt.Errorf("failed to drop default sheet: %w", err)
			}
		}
		idx, err := f.GetSheetIndex(sheets[0].Name)
		if err != nil {
			return nil, err
		}
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, s Sheet) error {
	rows := append([][]string{s.Table.Header}, s.Table.Rows...)
	for r, row := range rows {
		values := make([]interface{}, len(row))
		for c, cell := range row {
			values[c] = cellValue(cell, r == 0)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", s.Name, r+1, err)
		}
	}
	return nil
}

func cellValue(cell string, header bool) interface{} {
	if header {
		return cell
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return cell
	}
	return v
}
