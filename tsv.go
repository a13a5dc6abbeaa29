package feather

import "io"

func writeTSV(w io.Writer, fr Frame) error {
	if err := writeJoined(w, fr.Header, "\t"); err != nil {
		return err
	}
	for _, row := range fr.Rows {
		if err := writeJoined(w, rowTexts(row), "\t"); err != nil {
			return err
		}
	}
	return nil
}
