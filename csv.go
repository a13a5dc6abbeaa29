package feather

import (
	"fmt"
	"io"
	"strings"
)

// writeCSV joins fields with the delimiter and nothing else. Delimiters,
// quotes and newlines inside cells are written verbatim, so the output is
// not RFC 4180 when a cell contains one of them.
func writeCSV(w io.Writer, fr Frame) error {
	delim := ","
	if fr.Delimiter != 0 {
		delim = string(fr.Delimiter)
	}
	if err := writeJoined(w, fr.Header, delim); err != nil {
		return err
	}
	for _, row := range fr.Rows {
		if err := writeJoined(w, rowTexts(row), delim); err != nil {
			return err
		}
	}
	return nil
}

func writeJoined(w io.Writer, fields []string, sep string) error {
	_, err := fmt.Fprintln(w, strings.Join(fields, sep))
	return err
}
