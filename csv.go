package stockview

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/stockview/chart"
)

// csvHeader is the header of the hand-off file shared with estimation scripts.
var csvHeader = []string{"timestamp", "price"}

// EncodeCSV writes s as a two column CSV file with a "timestamp,price" header.
func EncodeCSV(w io.Writer, s chart.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range s {
		row := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCSV reads a series written by EncodeCSV or by an estimation script.
//
// The first line is a header and is skipped. Rows that do not start with two
// numbers are skipped too. Samples are returned in file order.
func DecodeCSV(r io.Reader) (chart.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}

	var s chart.Series
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return s, fmt.Errorf("cannot read csv: %w", err)
		}
		if len(row) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if errX != nil || errY != nil {
			continue
		}
		s = append(s, chart.Sample{X: x, Y: y})
	}
}
