package feather

import (
	"fmt"
	"io"
	"text/template"
)

// writeGoTemplate executes tmplStr once per row against a map of column
// name to typed cell value. Null cells are nil.
func writeGoTemplate(w io.Writer, tmplStr string, fr Frame) error {
	tmpl, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, row := range fr.Rows {
		data := make(map[string]any, len(fr.Header))
		for i, name := range fr.Header {
			data[name] = Value(row[i])
		}
		if err := tmpl.Execute(w, data); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
