package feather

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedBorder = errors.New("unsupported border style")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrRaggedRow         = errors.New("row length does not match header")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, Markdown, CSV, TSV, JSON, JSONL, YAML, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go text/template.
// The template is executed against a map of column name to cell text.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderASCII   BorderStyle = iota // +-+|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
	BorderNone                       // No borders, space-separated columns
)

var borderNames = map[BorderStyle]string{
	BorderASCII:   "ascii",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
	BorderNone:    "none",
}

func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// Borders returns the border style names accepted by ParseBorder.
func Borders() []string {
	return []string{"ascii", "rounded", "heavy", "double", "none"}
}

// ParseBorder parses a border style name.
func ParseBorder(s string) (BorderStyle, error) {
	for style, name := range borderNames {
		if name == s {
			return style, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders fr in format f and writes it to w. Rows are validated
// against the header before anything is written.
func Write(w io.Writer, f Format, fr Frame) error {
	if err := fr.validate(); err != nil {
		return err
	}
	switch f {
	case Table:
		return writeTable(w, fr)
	case Markdown:
		return writeMarkdown(w, fr)
	case CSV:
		return writeCSV(w, fr)
	case TSV:
		return writeTSV(w, fr)
	case JSON:
		return writeJSON(w, fr)
	case JSONL:
		return writeJSONL(w, fr)
	case YAML:
		return writeYAML(w, fr)
	case HTML:
		return writeHTML(w, fr)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, fr)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders fr in format f and returns the bytes. Nothing is
// returned on error, so callers never see a half-rendered table.
func Marshal(f Format, fr Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, fr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
