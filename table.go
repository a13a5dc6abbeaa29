package feather

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
	// headerFill draws the line under the header row.
	headerFill string
	// rowRule draws a horizontal line between data rows.
	rowRule bool
}

var borderSets = map[BorderStyle]borderChars{
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+", headerFill: "=", rowRule: true,
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼", headerFill: "─",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋", headerFill: "━",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬", headerFill: "═",
	},
}

func writeTable(w io.Writer, fr Frame) error {
	if len(fr.Header) == 0 {
		return nil
	}
	rows := fr.texts()
	widths := computeWidths(fr.Header, rows)

	for i, limit := range fr.MaxWidths {
		if i < len(widths) && limit > 0 && widths[i] > limit {
			widths[i] = limit
		}
	}

	aligns := fr.aligns()
	if fr.Border == BorderNone {
		return renderPlainTable(w, fr.Header, rows, widths, aligns)
	}
	bc, ok := borderSets[fr.Border]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedBorder, fr.Border)
	}
	return renderBorderedTable(w, fr.Header, rows, widths, aligns, bc)
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment) error {
	if err := writePlainRow(w, header, widths, aligns); err != nil {
		return err
	}
	if err := writePlainSep(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = formatTableCell(cells[i], width, aligns[i])
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, header, widths, aligns, bc.vertical); err != nil {
		return err
	}
	if len(rows) == 0 {
		return drawHLine(w, widths, bc.bottomLeft, bc.headerFill, bc.bottomTee, bc.bottomRight)
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.headerFill, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for i, row := range rows {
		if i > 0 && bc.rowRule {
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
				return err
			}
		}
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(formatTableCell(cells[i], width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
