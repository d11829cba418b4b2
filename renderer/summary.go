package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/etnz/stockview/date"
	md "github.com/nao1215/markdown"
)

// recentDays is the number of closes listed in the summary.
const recentDays = 5

// SummaryMarkdown renders the overview of a price series as markdown.
// The estimate section is omitted when estimate is empty.
func SummaryMarkdown(d stockview.StockData, s stockview.Summary, estimate chart.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := d.Labels[stockview.LabelTitle]
	if title == "" {
		title = fmt.Sprintf("%s Summary", d.Symbol)
	}
	doc.H1(title)

	if s.Count == 0 {
		doc.PlainText("No prices available.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d daily closes from %s to %s.", s.Count, s.From, s.To))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Last Close"), md.Bold(s.Last.String())},
		Rows: [][]string{
			{"First Close", s.First.String()},
			{"Low", s.Low.String()},
			{"High", s.High.String()},
			{"Change", s.Change.SignedString()},
			{"Return", fmt.Sprintf("%+.2f%%", s.Return*100)},
		},
	})

	doc.H2("Recent Closes")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Close"},
	}
	points := d.Points
	if len(points) > recentDays {
		points = points[len(points)-recentDays:]
	}
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		table.Rows = append(table.Rows, []string{
			date.FromUnix(int64(p.X)).String(),
			stockview.NewPrice(p.Y, s.Last.Currency()).String(),
		})
	}
	doc.Table(table)

	if len(estimate) > 0 {
		doc.H2("Estimate")
		first, last := estimate[0], estimate[len(estimate)-1]
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Estimated Points", fmt.Sprint(len(estimate))},
			Rows: [][]string{
				{"From", date.FromUnix(int64(first.X)).String()},
				{"To", date.FromUnix(int64(last.X)).String()},
				{"Final Estimate", stockview.NewPrice(last.Y, s.Last.Currency()).String()},
			},
		})
	}

	return doc.String()
}
