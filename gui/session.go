package gui

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"
	"strings"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/etnz/stockview/estimate"
	"github.com/etnz/stockview/surface"
)

// session is the data shown in the window. It is only modified on the UI
// thread.
type session struct {
	cfg     chart.Config
	tempDir string

	data     stockview.StockData
	estimate chart.Series
	dataFile string // hand-off CSV of data, for estimation scripts
}

// load replaces the displayed series, drops the previous estimate and writes
// the new hand-off file.
func (s *session) load(d stockview.StockData) error {
	s.data, s.estimate = d, nil
	if s.dataFile != "" {
		if err := os.Remove(s.dataFile); err != nil && !os.IsNotExist(err) {
			log.Printf("cannot remove %q (ignored): %v", s.dataFile, err)
		}
		s.dataFile = ""
	}
	path, err := stockview.CreateTempCSV(s.tempDir, d.Points)
	if err != nil {
		return err
	}
	s.dataFile = path
	return nil
}

// image draws the current chart. The chart is always computed from scratch
// from data and estimate.
func (s *session) image(width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return blank(1, 1)
	}
	cmds := s.data.Chart(s.cfg, float64(width), float64(height), s.estimate)
	img, err := surface.Image(width, height, cmds)
	if err != nil {
		log.Printf("cannot render chart: %v", err)
		return blank(width, height)
	}
	return img
}

// runEstimate runs l over dataFile and loads the estimate series it
// announces. It does not touch the session: it is called off the UI thread.
func runEstimate(ctx context.Context, l estimate.Launcher, dataFile string) (estimate.Result, chart.Series, error) {
	res, err := l.Run(ctx, dataFile)
	if err != nil {
		return res, nil, err
	}
	est, err := res.Load()
	return res, est, err
}

// splitArgs splits the arguments typed in the window on blanks.
func splitArgs(s string) []string { return strings.Fields(s) }

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}
