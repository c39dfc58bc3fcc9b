package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	IconExpanded  = "▼"
	IconCollapsed = "▶"

	defaultWidth     = 80
	defaultCellWidth = 18
	indentUnit       = "  "
)

// RowWriter prints row views as lines of text.
type RowWriter struct {
	out       io.Writer
	profile   termenv.Profile
	width     int
	cellWidth int
	markdown  func(string) (string, error)
}

// Option configures a RowWriter.
type Option func(*RowWriter)

// WithProfile forces a color profile. termenv.Ascii disables styling.
func WithProfile(p termenv.Profile) Option {
	return func(w *RowWriter) {
		w.profile = p
	}
}

// WithWidth sets the line width used to wrap detail content.
func WithWidth(width int) Option {
	return func(w *RowWriter) {
		w.width = width
	}
}

// WithCellWidth sets the width of each data cell.
func WithCellWidth(width int) Option {
	return func(w *RowWriter) {
		w.cellWidth = width
	}
}

// WithMarkdown renders string detail content through fn. Nil disables it.
func WithMarkdown(fn func(string) (string, error)) Option {
	return func(w *RowWriter) {
		w.markdown = fn
	}
}

// NewRowWriter creates a RowWriter on out. Terminals get colors, their
// width and markdown details; other writers get plain text.
func NewRowWriter(out io.Writer, opts ...Option) *RowWriter {
	w := &RowWriter{
		out:       out,
		profile:   termenv.Ascii,
		width:     defaultWidth,
		cellWidth: defaultCellWidth,
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w.profile = termenv.ColorProfile()
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			w.width = width
		}
		w.markdown = NewRenderer(w.width)
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// RenderRow implements ports.RowRenderer.
func (w *RowWriter) RenderRow(view domain.RowView) error {
	if !view.Visible {
		return nil
	}
	if view.Detail {
		return w.renderDetail(view)
	}

	var b strings.Builder
	leaf := 0
	for i, cell := range view.Cells {
		if i > 0 {
			b.WriteString(" ")
		}
		if cell.Key == domain.ExpandIconCellKey {
			b.WriteString(w.icon(view))
			continue
		}

		text := ""
		if !cell.Empty && cell.Content != nil {
			text = fmt.Sprint(cell.Content)
		}
		if leaf == view.IconColumn {
			prefix := strings.Repeat(indentUnit, view.Indent)
			if !view.IconAsCell {
				if icon := w.icon(view); icon != "" {
					prefix += icon + " "
				}
			}
			text = prefix + text
		}
		b.WriteString(pad(text, w.cellWidth))
		leaf++
	}

	line := w.profile.String(strings.TrimRight(b.String(), " "))
	if view.Expanded {
		line = line.Bold().Foreground(w.profile.Color("#818cf8"))
	}
	_, err := fmt.Fprintln(w.out, line.String())
	return err
}

func (w *RowWriter) icon(view domain.RowView) string {
	switch {
	case view.Expandable && view.Expanded:
		return IconExpanded
	case view.Expandable:
		return IconCollapsed
	case view.IndentSpaced:
		return " "
	}
	return ""
}

func (w *RowWriter) renderDetail(view domain.RowView) error {
	var content any
	for _, cell := range view.Cells {
		if cell.Key == domain.ExtraRowCellKey {
			content = cell.Content
		}
	}

	text := ""
	switch c := content.(type) {
	case nil:
	case string:
		text = c
		if c == domain.NonBreakingSpace {
			text = ""
		} else if w.markdown != nil {
			if rendered, err := w.markdown(c); err == nil {
				text = strings.Trim(rendered, "\n")
			}
		}
	default:
		text = fmt.Sprint(c)
	}

	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	if view.SaveHeight != nil {
		view.SaveHeight(float64(len(lines)))
	}
	for len(lines) < int(view.Height) {
		lines = append(lines, "")
	}

	margin := strings.Repeat(indentUnit, view.Indent)
	for _, line := range lines {
		out := w.profile.String(margin + line).Faint()
		if _, err := fmt.Fprintln(w.out, strings.TrimRight(out.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
