package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ryabkov82/price-converter/internal/product"
)

// SheetReader reads the first worksheet of an Excel workbook.
type SheetReader struct{}

func (SheetReader) ReadRows(path string) ([][]product.Cell, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, nil
	}
	sheet := sheetList[0]

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from %s: %w", path, err)
	}
	defer rows.Close()

	var table [][]product.Cell
	rowNum := 0
	for rows.Next() {
		rowNum++

		// Raw values: number formats must not leak grouping commas into prices.
		values, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}

		row := make([]product.Cell, len(values))
		for i, raw := range values {
			cellRef, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return nil, err
			}
			valType, err := f.GetCellType(sheet, cellRef)
			if err != nil {
				valType = excelize.CellTypeUnset
			}
			row[i] = sheetCell(valType, raw)
		}
		table = append(table, row)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("read rows from %s: %w", path, err)
	}

	return table, nil
}

// sheetCell keeps numbers the workbook stores natively as numbers; every
// other value is passed on as text.
func sheetCell(valType excelize.CellType, raw string) product.Cell {
	if raw == "" {
		return product.Empty()
	}
	switch valType {
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return product.Number(1)
		}
		return product.Number(0)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return product.Number(n)
		}
	}
	return product.Text(raw)
}
