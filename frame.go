package feather

import "fmt"

// Frame is the input to every format: a header, the rows aligned to it by
// position, and optional rendering hints.
type Frame struct {
	Header []string
	Rows   [][]Cell

	// Aligns sets per-column alignment for Table and Markdown.
	// Missing entries default to AlignLeft.
	Aligns []Alignment

	// Border selects the Table border style. The zero value is BorderASCII.
	Border BorderStyle

	// MaxWidths caps Table column widths; longer cells are cut with "...".
	// A zero entry means no limit for that column.
	MaxWidths []int

	// Delimiter overrides the CSV field delimiter. Zero means comma.
	Delimiter rune
}

func (fr Frame) validate() error {
	for i, row := range fr.Rows {
		if len(row) != len(fr.Header) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRaggedRow, i, len(row), len(fr.Header))
		}
	}
	return nil
}

// texts converts every row to its canonical text form.
func (fr Frame) texts() [][]string {
	out := make([][]string, len(fr.Rows))
	for i, row := range fr.Rows {
		out[i] = rowTexts(row)
	}
	return out
}

func rowTexts(row []Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = Text(c)
	}
	return out
}

func (fr Frame) aligns() []Alignment {
	return extendAligns(fr.Aligns, len(fr.Header))
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}
