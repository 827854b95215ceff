package gridview

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Palette colours used for the terminal grid.
const (
	colorExcluded = "#f472b6"
	colorShifted  = "#facc15"
	colorHeader   = "#818cf8"
)

// RenderText draws the table for a terminal. Excluded cells and the cell
// receiving the relocated symbol are coloured according to profile.
// With symbols set, cells show the symbol instead of the step number.
func RenderText(t Table, p termenv.Profile, symbols bool) string {
	var sb strings.Builder

	title := p.String(t.Name).Foreground(p.Color(colorHeader)).Bold()
	sb.WriteString(fmt.Sprintf("%s (%dx%d)\n", title, t.Rows, t.Cols))

	for _, row := range t.Cells {
		for c, cell := range row {
			if c > 0 {
				sb.WriteString(" ")
			}
			text := cellText(cell, symbols)
			style := p.String(text)
			switch {
			case cell.Excluded:
				style = style.Foreground(p.Color(colorExcluded))
			case cell.Shifted:
				style = style.Foreground(p.Color(colorShifted)).Underline()
			}
			sb.WriteString(style.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderMarkdown draws the table as a markdown table.
// Excluded cells are struck through and the relocated cell is bold.
func RenderMarkdown(t Table, symbols bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", t.Name))

	sb.WriteString("| |")
	for c := 0; c < t.Cols; c++ {
		sb.WriteString(fmt.Sprintf(" %d |", c))
	}
	sb.WriteString("\n|---|")
	for c := 0; c < t.Cols; c++ {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for r, row := range t.Cells {
		sb.WriteString(fmt.Sprintf("| **%d** |", r))
		for _, cell := range row {
			text := escapeMarkdown(strings.TrimSpace(cellText(cell, symbols)))
			switch {
			case cell.Excluded:
				text = "~~" + text + "~~"
			case cell.Shifted:
				text = "**" + text + "**"
			}
			sb.WriteString(" " + text + " |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellText(cell Cell, symbols bool) string {
	if symbols && cell.Symbol != 0 {
		return fmt.Sprintf("%3c", cell.Symbol)
	}
	if cell.Step < 0 {
		return "  -"
	}
	return fmt.Sprintf("%3d", cell.Step)
}

func escapeMarkdown(s string) string {
	r := strings.NewReplacer(`|`, `\|`, `*`, `\*`, `_`, `\_`, `~`, `\~`, "`", "\\`", `<`, `\<`)
	return r.Replace(s)
}
