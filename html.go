package feather

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, fr Frame) error {
	aligns := fr.aligns()

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if err := writeHTMLRow(w, "th", fr.Header, aligns); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range fr.Rows {
		if err := writeHTMLRow(w, "td", rowTexts(row), aligns); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLRow(w io.Writer, tag string, cells []string, aligns []Alignment) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, cell := range cells {
		style := alignStyle(aligns, i)
		if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, style, html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
