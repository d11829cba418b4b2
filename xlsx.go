package stockview

import (
	"io"

	"github.com/etnz/stockview/chart"
	"github.com/etnz/stockview/date"
	"github.com/xuri/excelize/v2"
)

const (
	pricesSheet   = "Prices"
	estimateSheet = "Estimate"
)

// EncodeXLSX writes a workbook with the primary series in a "Prices" sheet
// and, when not empty, the estimate series in an "Estimate" sheet.
func EncodeXLSX(w io.Writer, primary, estimate chart.Series) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", pricesSheet); err != nil {
		return err
	}
	if err := writeSheet(f, pricesSheet, primary); err != nil {
		return err
	}
	if len(estimate) > 0 {
		if _, err := f.NewSheet(estimateSheet); err != nil {
			return err
		}
		if err := writeSheet(f, estimateSheet, estimate); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// writeSheet fills sheet with a header row and one row per sample.
func writeSheet(f *excelize.File, sheet string, s chart.Series) error {
	if err := f.SetSheetRow(sheet, "A1", &[]any{"timestamp", "date", "price"}); err != nil {
		return err
	}
	for i, p := range s {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{int64(p.X), date.FromUnix(int64(p.X)).String(), p.Y}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
