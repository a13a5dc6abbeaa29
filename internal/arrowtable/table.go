// Package arrowtable reads Feather (Arrow IPC file) data and exposes it as
// feather.Schema, a row count, and rows of feather.Cell.
package arrowtable

import (
	"context"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/bjaus/feather"
	"github.com/bjaus/feather/internal/errs"
	"github.com/bjaus/feather/internal/logger"
)

// ReadAtSeeker is the random access the IPC file reader needs.
type ReadAtSeeker interface {
	io.Reader
	io.Seeker
	io.ReaderAt
}

const (
	arrowMagic     = "ARROW1"
	featherV1Magic = "FEA1"
)

// Table is an in-memory Feather table. Call Close to release its memory.
type Table struct {
	schema  *arrow.Schema
	records []arrow.Record
	rows    int
}

// Open decodes every record batch of the Feather file in src.
func Open(ctx context.Context, src ReadAtSeeker) (*Table, error) {
	if err := checkMagic(src); err != nil {
		return nil, err
	}

	mem := memory.NewGoAllocator()
	r, err := ipc.NewFileReader(src, ipc.WithAllocator(mem))
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindReadError, "invalid feather file", err)
	}
	defer r.Close()

	t := &Table{schema: r.Schema()}
	for i := range r.NumRecords() {
		if err := ctx.Err(); err != nil {
			t.Close()
			return nil, errs.Wrap(errs.ErrKindReadError, "read cancelled", err)
		}
		rec, err := r.RecordAt(i)
		if err != nil {
			t.Close()
			return nil, errs.Wrap(errs.ErrKindReadError, fmt.Sprintf("failed to read record batch %d", i), err)
		}
		t.records = append(t.records, rec)
		t.rows += int(rec.NumRows())
	}

	logger.FromContext(ctx).Debug().
		Int("batches", len(t.records)).
		Int("rows", t.rows).
		Int("columns", t.schema.NumFields()).
		Msg("feather file decoded")
	return t, nil
}

// checkMagic rejects files that are not Arrow IPC files before the reader
// produces a less helpful error.
func checkMagic(src io.ReaderAt) error {
	buf := make([]byte, len(arrowMagic))
	n, err := src.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return errs.Wrap(errs.ErrKindReadError, "failed to read file header", err)
	}
	head := string(buf[:n])
	switch {
	case head == arrowMagic:
		return nil
	case len(head) >= len(featherV1Magic) && head[:len(featherV1Magic)] == featherV1Magic:
		return errs.New(errs.ErrKindReadError, "feather v1 files are not supported; rewrite the file as feather v2")
	default:
		return errs.New(errs.ErrKindReadError, "not a feather file: missing ARROW1 magic")
	}
}

// Close releases every record batch. It is safe to call more than once.
func (t *Table) Close() error {
	for _, rec := range t.records {
		rec.Release()
	}
	t.records = nil
	t.rows = 0
	return nil
}

// Schema returns the fields in column order with arrow's type names.
func (t *Table) Schema() feather.Schema {
	fields := t.schema.Fields()
	out := make(feather.Schema, len(fields))
	for i, f := range fields {
		out[i] = feather.Field{Name: f.Name, Type: f.Type.String()}
	}
	return out
}

// RowCount returns the number of rows across all record batches.
func (t *Table) RowCount() int { return t.rows }

// Aligns right-aligns numeric columns and left-aligns everything else.
func (t *Table) Aligns() []feather.Alignment {
	fields := t.schema.Fields()
	out := make([]feather.Alignment, len(fields))
	for i, f := range fields {
		if isNumeric(f.Type) {
			out[i] = feather.AlignRight
		}
	}
	return out
}

func isNumeric(dt arrow.DataType) bool {
	if d, ok := dt.(*arrow.DictionaryType); ok {
		dt = d.ValueType
	}
	id := dt.ID()
	return arrow.IsInteger(id) || arrow.IsFloating(id) || arrow.IsDecimal(id)
}

// Slice materialises the rows in s. Null values are nil cells. The cells
// reference the table's memory and are valid until Close.
func (t *Table) Slice(s feather.Slice) ([][]feather.Cell, error) {
	if s.Offset < 0 || s.Length < 0 || s.End() > t.rows {
		return nil, errs.Newf(errs.ErrKindReadError, "slice [%d, %d) out of range for %d rows", s.Offset, s.End(), t.rows)
	}
	rows := make([][]feather.Cell, 0, s.Length)
	start := 0
	for _, rec := range t.records {
		if start >= s.End() {
			break
		}
		n := int(rec.NumRows())
		lo, hi := max(s.Offset, start), min(s.End(), start+n)
		for r := lo; r < hi; r++ {
			i := r - start
			row := make([]feather.Cell, rec.NumCols())
			for c := range row {
				col := rec.Column(c)
				if col.IsNull(i) {
					continue
				}
				row[c] = cell{arr: col, i: i}
			}
			rows = append(rows, row)
		}
		start += n
	}
	return rows, nil
}

// Frame returns the header, alignments, and rows of s ready for rendering.
func (t *Table) Frame(s feather.Slice) (feather.Frame, error) {
	rows, err := t.Slice(s)
	if err != nil {
		return feather.Frame{}, err
	}
	return feather.Frame{
		Header: t.Schema().Names(),
		Aligns: t.Aligns(),
		Rows:   rows,
	}, nil
}
