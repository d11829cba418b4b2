package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
)

func testData() (stockview.StockData, stockview.Summary) {
	d := stockview.StockData{
		Symbol: "VUG",
		Points: chart.Series{
			{X: 1704153600, Y: 313.5},
			{X: 1704240000, Y: 309.75},
			{X: 1704326400, Y: 311},
		},
		Labels: stockview.DefaultLabels("VUG"),
	}
	return d, stockview.Summarize(d.Symbol, d.Points, "USD")
}

func TestSummaryMarkdown(t *testing.T) {
	d, s := testData()
	got := SummaryMarkdown(d, s, nil)
	for _, want := range []string{
		"# VUG Daily Stock Prices",
		"3 daily closes from 2024-01-02 to 2024-01-04.",
		"$311.00",
		"$313.50",
		"-$2.50",
		"-0.80%",
		"## Recent Closes",
		"2024-01-03",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "## Estimate") {
		t.Errorf("SummaryMarkdown() without estimate has an Estimate section:\n%s", got)
	}
	// labels left, amounts right
	if !strings.Contains(got, ":-") || !strings.Contains(got, "-:") {
		t.Errorf("SummaryMarkdown() tables are not aligned:\n%s", got)
	}
	// most recent first
	_, recent, _ := strings.Cut(got, "## Recent Closes")
	if i, j := strings.Index(recent, "2024-01-04"), strings.Index(recent, "2024-01-02"); i < 0 || j < 0 || i > j {
		t.Errorf("SummaryMarkdown() recent closes are not in reverse order:\n%s", got)
	}
}

func TestSummaryMarkdown_Estimate(t *testing.T) {
	d, s := testData()
	est := chart.Series{{X: 1704326400, Y: 311}, {X: 1704412800, Y: 315.25}}
	got := SummaryMarkdown(d, s, est)
	for _, want := range []string{"## Estimate", "2024-01-05", "$315.25"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	d := stockview.StockData{Symbol: "VUG"}
	got := SummaryMarkdown(d, stockview.Summarize("VUG", nil, "USD"), nil)
	if !strings.Contains(got, "# VUG Summary") || !strings.Contains(got, "No prices available.") {
		t.Errorf("SummaryMarkdown() = %q", got)
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	if err := HTML(&buf, "VUG <daily>", "# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n", svg); err != nil {
		t.Fatalf("HTML() unexpected error = %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"<title>VUG &lt;daily&gt;</title>",
		string(svg),
		"<h1>Title</h1>",
		"<table>",
		"<td>1</td>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() does not contain %q:\n%s", want, got)
		}
	}
}

func TestTerminal(t *testing.T) {
	got, err := Terminal("# VUG\n\nSome text.", 40)
	if err != nil {
		t.Fatalf("Terminal() unexpected error = %v", err)
	}
	if !strings.Contains(got, "VUG") || !strings.Contains(got, "Some text.") {
		t.Errorf("Terminal() = %q", got)
	}
}
