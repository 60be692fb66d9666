package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// Rounded border characters.
const (
	topLeft, topRight, bottomLeft, bottomRight = "╭", "╮", "╰", "╯"
	horizontal, vertical                       = "─", "│"
	topTee, bottomTee, leftTee, rightTee       = "┬", "┴", "├", "┤"
	cross                                      = "┼"
)

func writeTable(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := rowsOf(entries)
	widths := computeWidths(header, rows)

	if err := writeBorder(w, widths, topLeft, topTee, topRight); err != nil {
		return err
	}
	if err := writeTableRow(w, header, widths, make([]alignment, len(widths))); err != nil {
		return err
	}
	if err := writeBorder(w, widths, leftTee, cross, rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeTableRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return writeBorder(w, widths, bottomLeft, bottomTee, bottomRight)
}

func writeBorder(w io.Writer, widths []int, left, mid, right string) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat(horizontal, width+2)
	}
	_, err := fmt.Fprintln(w, left+strings.Join(parts, mid)+right)
	return err
}

func writeTableRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	sep := " " + vertical + " "
	_, err := fmt.Fprintln(w, vertical+" "+strings.Join(padded, sep)+" "+vertical)
	return err
}

func writeMarkdown(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := rowsOf(entries)
	for _, row := range rows {
		for i, cell := range row {
			row[i] = strings.ReplaceAll(cell, "|", `\|`)
		}
	}
	widths := computeWidths(header, rows)
	// Minimum 3 for alignment markers.
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths, make([]alignment, len(widths))); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		if aligns[i] == alignRight {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func rowsOf(entries []Entry) [][]string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = e.Row()
	}
	return rows
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
