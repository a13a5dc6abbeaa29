package feather

import (
	"bytes"
	"encoding/json"
	"io"
)

// record is one row keyed by column name. It marshals its keys in column
// order so the output is stable.
type record struct {
	keys  []string
	cells []Cell
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSON(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeJSON(&buf, Value(r.cells[i])); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSON appends v to buf without HTML escaping. json.Marshal always
// escapes <, > and &, and an outer encoder does not undo that.
func encodeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

func (fr Frame) records() []record {
	out := make([]record, len(fr.Rows))
	for i, row := range fr.Rows {
		out[i] = record{keys: fr.Header, cells: row}
	}
	return out
}

func writeJSON(w io.Writer, fr Frame) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(fr.records())
}
