// Package gui is the desktop window of stockview: fetch a ticker, chart it,
// and overlay the estimate of an external script.
package gui

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/etnz/stockview/estimate"
	"github.com/etnz/stockview/surface"
)

// DefaultSymbol is the ticker shown when the window opens.
const DefaultSymbol = "VUG"

// Fetcher retrieves the daily prices of a symbol.
type Fetcher interface {
	FetchDaily(ctx context.Context, symbol string) (stockview.StockData, error)
}

// Options configure the window.
type Options struct {
	Fetcher Fetcher

	Symbol string // DefaultSymbol when empty
	Script string // initial estimation script
	Args   string // initial script arguments, blank separated

	// Launcher settings other than the script and its arguments.
	Launcher estimate.Launcher

	TempDir string // where hand-off files go, os.TempDir() when empty
}

type uiState struct {
	opts    Options
	window  fyne.Window
	session *session

	symbol   *widget.Entry
	script   *widget.Entry
	args     *widget.Entry
	console  *widget.Entry
	fileInfo *widget.Label
	chartImg *canvas.Image
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) {
	if opts.Symbol == "" {
		opts.Symbol = DefaultSymbol
	}
	cfg := chart.DefaultConfig()
	cfg.Measurer = surface.NewMeasurer()

	a := app.NewWithID("com.etnz.stockview")
	w := a.NewWindow("StockView")
	w.Resize(fyne.NewSize(1000, 800))

	state := &uiState{
		opts:    opts,
		window:  w,
		session: &session{cfg: cfg, tempDir: opts.TempDir},
	}

	state.symbol = widget.NewEntry()
	state.symbol.SetText(opts.Symbol)
	state.script = widget.NewEntry()
	state.script.SetPlaceHolder("estimation script (.py)")
	state.script.SetText(opts.Script)
	state.args = widget.NewEntry()
	state.args.SetText(opts.Args)
	state.console = widget.NewMultiLineEntry()
	state.console.Wrapping = fyne.TextWrapWord
	state.fileInfo = widget.NewLabel("")
	state.chartImg = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartImg.FillMode = canvas.ImageFillContain
	state.chartImg.SetMinSize(fyne.NewSize(600, 400))

	graphBtn := widget.NewButton("Graph", func() { graph(state) })
	browseBtn := widget.NewButton("Browse…", func() { browseScript(state) })
	runBtn := widget.NewButton("Run", func() { runScript(state) })

	top := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Ticker:"), graphBtn, state.symbol),
		container.NewBorder(nil, nil, widget.NewLabel("Script:"), browseBtn, state.script),
		container.NewBorder(nil, nil, widget.NewLabel("Arguments:"), runBtn, state.args),
		container.NewHBox(widget.NewLabel("Current Data File:"), state.fileInfo),
	)
	split := container.NewVSplit(state.chartImg, state.console)
	split.Offset = 0.8
	w.SetContent(container.NewBorder(top, nil, nil, nil, split))

	// Redraw the chart when the window is resized.
	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })
	ticker := time.NewTicker(300 * time.Millisecond)
	go func() {
		defer ticker.Stop()
		watchResize(done, ticker.C,
			func() (sz fyne.Size) {
				fyne.DoAndWait(func() { sz = state.chartImg.Size() })
				return sz
			},
			func() { fyne.Do(func() { redraw(state) }) })
	}()

	w.ShowAndRun()
}

// watchResize calls redraw when the size changes between two ticks, until
// done is closed. size is never called once done is closed.
func watchResize(done <-chan struct{}, tick <-chan time.Time, size func() fyne.Size, redraw func()) {
	prev := fyne.NewSize(0, 0)
	for {
		select {
		case <-done:
			return
		case <-tick:
		}
		select {
		case <-done:
			return
		default:
		}
		if cur := size(); cur != prev {
			prev = cur
			redraw()
		}
	}
}

// redraw renders the chart at the current size of its canvas.
func redraw(state *uiState) {
	sz := state.chartImg.Size()
	w, h := int(sz.Width), int(sz.Height)
	if w < 100 || h < 60 {
		w, h = 600, 400
	}
	state.chartImg.Image = state.session.image(w, h)
	state.chartImg.Refresh()
}

func graph(state *uiState) {
	symbol := state.symbol.Text
	if symbol == "" || state.opts.Fetcher == nil {
		return
	}
	state.console.SetText(fmt.Sprintf("fetching %s…", symbol))
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		data, err := state.opts.Fetcher.FetchDaily(ctx, symbol)
		fyne.Do(func() {
			if err != nil {
				state.console.SetText(err.Error())
				dialog.ShowError(err, state.window)
				return
			}
			if err := state.session.load(data); err != nil {
				dialog.ShowError(err, state.window)
			}
			state.fileInfo.SetText(state.session.dataFile)
			state.console.SetText(fmt.Sprintf("%s: %d daily closes", data.Symbol, len(data.Points)))
			redraw(state)
		})
	}()
}

func browseScript(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.script.SetText(rc.URI().Path())
	}, state.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".py"}))
	d.Show()
}

func runScript(state *uiState) {
	dataFile := state.session.dataFile
	if dataFile == "" {
		dialog.ShowInformation("Run", "Graph a ticker first.", state.window)
		return
	}
	l := state.opts.Launcher
	l.Script = state.script.Text
	l.Args = splitArgs(state.args.Text)
	state.console.SetText("running " + l.Script + "…")

	go func() {
		res, est, err := runEstimate(context.Background(), l, dataFile)
		fyne.Do(func() {
			state.console.SetText(res.Output)
			if err != nil {
				log.Printf("estimate: %v", err)
				dialog.ShowError(err, state.window)
				return
			}
			if res.ExitCode != 0 {
				dialog.ShowInformation("Script Error", fmt.Sprintf("Script exited with code %d.", res.ExitCode), state.window)
			}
			// the data may have changed while the script ran
			if len(est) > 0 && state.session.dataFile == dataFile {
				state.session.estimate = est
				redraw(state)
			}
		})
	}()
}
