package feather

import (
	"fmt"
	"io"
	"strings"
)

// WriteMetadata writes the default report: column and row counts, a blank
// line, then the schema.
func WriteMetadata(w io.Writer, s Schema, rows int) error {
	lines := []string{
		fmt.Sprintf("Number of columns: %d", len(s)),
		fmt.Sprintf("Number of rows: %d", rows),
		"",
		"Schema:",
	}
	return writeLines(w, append(lines, s.Lines()...))
}

// WriteSchema writes one "name: type" line per field.
func WriteSchema(w io.Writer, s Schema) error {
	return writeLines(w, s.Lines())
}

// WriteCount writes the total record count.
func WriteCount(w io.Writer, rows int) error {
	_, err := fmt.Fprintf(w, "Total records: %d\n", rows)
	return err
}

func writeLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
