package stockview

import (
	"github.com/etnz/stockview/chart"
)

// Label keys of a StockData.
const (
	LabelXAxis  = "x_axis"
	LabelYAxis  = "y_axis"
	LabelLegend = "legend"
	LabelTitle  = "title"
)

// StockData is a daily price series ready to be charted.
type StockData struct {
	Symbol string
	Points chart.Series // (UNIX seconds, close price), chronological
	Labels map[string]string
}

// DefaultLabels returns the chart labels of a daily price series of symbol.
func DefaultLabels(symbol string) map[string]string {
	return map[string]string{
		LabelXAxis:  "Date",
		LabelYAxis:  "Price (USD)",
		LabelLegend: symbol + " Stock Price",
		LabelTitle:  symbol + " Daily Stock Prices",
	}
}

// EstimateLabels returns the labels of an estimate series of symbol.
func EstimateLabels(symbol string) map[string]string {
	labels := DefaultLabels(symbol)
	labels[LabelLegend] = "est. " + symbol + " Stock Price"
	return labels
}

// ChartLabels converts the label map to chart labels. Missing keys are empty.
func (d StockData) ChartLabels() chart.Labels {
	return chart.Labels{
		Title:  d.Labels[LabelTitle],
		XAxis:  d.Labels[LabelXAxis],
		YAxis:  d.Labels[LabelYAxis],
		Legend: d.Labels[LabelLegend],
	}
}

// Chart describes d as a chart of the given canvas size, overlaid with the
// estimate series when it is not empty.
func (d StockData) Chart(cfg chart.Config, width, height float64, estimate chart.Series) []chart.Command {
	labels := d.ChartLabels()
	if len(estimate) > 0 {
		labels.EstimateLegend = EstimateLabels(d.Symbol)[LabelLegend]
	}
	return chart.Render(cfg, width, height, d.Points, estimate, labels)
}
