package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the rowexpand banner followed by title.
func PrintBanner(out io.Writer, p termenv.Profile, title string) {
	lines := []struct {
		text  string
		color string
	}{
		{"  ┬─┐┌─┐┬ ┬┌─┐─┐ ┬┌─┐┌─┐┌┐┌┌┬┐", "#818cf8"},
		{"  ├┬┘│ ││││├┤ ┌┴┬┘├─┘├─┤│││ ││", "#c084fc"},
		{"  ┴└─└─┘└┴┘└─┘┴ └─┴  ┴ ┴┘└┘─┴┘", "#f472b6"},
	}

	fmt.Fprintln(out)
	for _, l := range lines {
		fmt.Fprintln(out, p.String(l.text).Foreground(p.Color(l.color)))
	}
	if title != "" {
		fmt.Fprintln(out, p.String("  "+title).Bold())
	}
	fmt.Fprintln(out)
}
