package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/etnz/stockview/surface"
)

// readCSV reads a series file.
func readCSV(path string) (chart.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := stockview.DecodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return s, nil
}

// writeCSV writes s to path, or to a new temporary file when path is empty,
// and returns the path written.
func writeCSV(path string, s chart.Series) (string, error) {
	if path == "" {
		return stockview.CreateTempCSV("", s)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := stockview.EncodeCSV(f, s); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// chartOptions are the flags shaping a rendered chart.
type chartOptions struct {
	width, height int
	numericX      bool
}

func (o *chartOptions) config() chart.Config {
	cfg := chart.DefaultConfig()
	cfg.Measurer = surface.NewMeasurer()
	if o.numericX {
		cfg.XMode = chart.Numeric
	}
	return cfg
}

// writeChart renders d and its estimate to path, as SVG or PNG depending on
// the extension.
func writeChart(path string, o chartOptions, d stockview.StockData, estimate chart.Series) error {
	cmds := d.Chart(o.config(), float64(o.width), float64(o.height), estimate)

	var buf bytes.Buffer
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		err = surface.SVG(&buf, o.width, o.height, cmds)
	case ".png":
		err = surface.PNG(&buf, o.width, o.height, cmds)
	default:
		return fmt.Errorf("unsupported chart format %q, use .png or .svg", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
