// Package renderer formats stock reports as markdown, for the terminal and
// as HTML pages.
package renderer
