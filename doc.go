// Package feather renders the contents of a columnar table as text.
//
// The package knows nothing about file formats. A reader supplies a
// [Schema], a row count, and rows of [Cell] values; this package decides
// which rows to show and how to print them.
//
// # Row Selection
//
// [Select] turns a request for N rows into a [Slice]. [Head] takes the first
// N rows, [Tail] the last N. Both are capped at the table size and keep the
// table's row order:
//
//	s, err := feather.Select(3, total, feather.Tail)
//
// # Reports
//
//   - [WriteMetadata]: column count, row count, and schema
//   - [WriteSchema]: one "name: type" line per field
//   - [WriteCount]: the total record count
//
// # Formats
//
// [Write] and [Marshal] render a [Frame] in one [Format]:
//
//   - [Table]: a bordered grid; see [BorderStyle]
//   - [Markdown]: a pipe table with a dash separator row
//   - [CSV]: fields joined by commas with no quoting
//   - [TSV], [JSON], [JSONL], [YAML], [HTML]
//   - [GoTemplate]: a text/template executed once per row
//
// Null cells render as empty text in the text formats and as null in JSON
// and YAML. Identical input always renders to identical bytes.
//
// The CSV writer does not quote or escape. A cell holding a comma, quote, or
// newline is written verbatim, matching the output of the tool this package
// was built to replace.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrUnsupportedBorder]: unknown border style name
//   - [ErrInvalidTemplate]: invalid go-template syntax
//   - [ErrRaggedRow]: a row does not have one cell per header
//   - [ErrNegativeCount]: Select was asked for fewer than zero rows
package feather
