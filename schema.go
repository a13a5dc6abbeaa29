package feather

// Field is a named, typed column. Type is the name reported by the file
// reader and is printed as-is.
type Field struct {
	Name string
	Type string
}

// Schema is the ordered list of fields. Its order is the column order of
// every output.
type Schema []Field

// Names returns the field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Lines returns one "name: type" line per field.
func (s Schema) Lines() []string {
	lines := make([]string, len(s))
	for i, f := range s {
		lines[i] = f.Name + ": " + f.Type
	}
	return lines
}
