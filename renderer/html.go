package renderer

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTML writes a standalone page with the chart on top of the markdown
// report. svg is embedded as is; it is omitted when empty.
func HTML(w io.Writer, title, markdown string, svg []byte) error {
	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(markdown), &body); err != nil {
		return fmt.Errorf("cannot convert markdown: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	if len(svg) > 0 {
		page.WriteString("<figure class=\"chart\">\n")
		page.Write(svg)
		page.WriteString("\n</figure>\n")
	}
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	_, err := w.Write(page.Bytes())
	return err
}
