// Package stockview charts daily stock prices and overlays the forecasts of
// external estimation scripts.
//
// The core functionalities include:
//   - Price Data: a StockData holds the daily closes of a ticker as
//     (UNIX seconds, price) samples, with the labels of its chart.
//   - Charting: StockData.Chart lays the series out with the chart package,
//     which describes the drawing as a list of commands any surface can paint.
//   - Hand-off Files: prices are exchanged with estimation scripts as
//     "timestamp,price" CSV files, see EncodeCSV and DecodeCSV.
//   - Configuration: the remote API key and endpoint come from the
//     environment or a stockview.env file, see LoadConfig.
//
// This package serves as the foundational logic for the `stockview`
// command-line tool and its desktop window.
package stockview
