// Package testutil writes Feather fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
)

// PeopleSchema is the id/name/age schema used across tests.
var PeopleSchema = arrow.NewSchema([]arrow.Field{
	{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	{Name: "name", Type: arrow.BinaryTypes.String},
	{Name: "age", Type: arrow.PrimitiveTypes.Int64},
}, nil)

// Person is one row of PeopleSchema.
type Person struct {
	ID   int64
	Name string
	Age  int64
}

// People are the five rows of the sample table.
var People = []Person{
	{1, "Alice", 25},
	{2, "Bob", 30},
	{3, "Charlie", 35},
	{4, "David", 40},
	{5, "Eve", 45},
}

// WritePeople writes batches of people to a Feather file in a temp dir and
// returns its path. Each argument becomes one record batch.
func WritePeople(t testing.TB, batches ...[]Person) string {
	t.Helper()

	mem := memory.NewGoAllocator()
	b := array.NewRecordBuilder(mem, PeopleSchema)
	defer b.Release()

	var recs []arrow.Record
	for _, batch := range batches {
		for _, p := range batch {
			b.Field(0).(*array.Int64Builder).Append(p.ID)
			b.Field(1).(*array.StringBuilder).Append(p.Name)
			b.Field(2).(*array.Int64Builder).Append(p.Age)
		}
		recs = append(recs, b.NewRecord())
	}
	return WriteRecords(t, PeopleSchema, recs...)
}

// SamplePath writes the five-row sample table as a single batch.
func SamplePath(t testing.TB) string {
	t.Helper()
	return WritePeople(t, People)
}

// WriteRecords writes recs to a new Feather file and releases them.
func WriteRecords(t testing.TB, schema *arrow.Schema, recs ...arrow.Record) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.feather")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(memory.NewGoAllocator()))
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, w.Write(rec))
		rec.Release()
	}
	require.NoError(t, w.Close())
	return path
}

// WriteFile writes raw bytes to a temp file and returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
