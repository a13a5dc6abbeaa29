package feather

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, fr Frame) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range fr.records() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
