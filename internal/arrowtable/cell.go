package arrowtable

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/bjaus/feather"
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05.999999999"
	timestampLayout = dateLayout + " " + timeLayout
)

// cell is a non-null value at position i of arr. Conversion happens on
// demand so unrendered cells cost nothing.
type cell struct {
	arr arrow.Array
	i   int
}

var _ feather.Cell = cell{}

func (c cell) Text() string {
	switch a := c.arr.(type) {
	case *array.Boolean:
		return feather.Bool(a.Value(c.i)).Text()
	case *array.Int8, *array.Int16, *array.Int32, *array.Int64,
		*array.Uint8, *array.Uint16, *array.Uint32, *array.Uint64:
		return c.number().Text()
	case *array.Float16:
		return feather.FormatFloat(float64(a.Value(c.i).Float32()), 32)
	case *array.Float32:
		return feather.FormatFloat(float64(a.Value(c.i)), 32)
	case *array.Float64:
		return feather.FormatFloat(a.Value(c.i), 64)
	case *array.String:
		return a.Value(c.i)
	case *array.LargeString:
		return a.Value(c.i)
	case *array.StringView:
		return a.Value(c.i)
	case *array.Binary:
		return string(a.Value(c.i))
	case *array.LargeBinary:
		return string(a.Value(c.i))
	case *array.Date32:
		return a.Value(c.i).ToTime().Format(dateLayout)
	case *array.Date64:
		return a.Value(c.i).ToTime().Format(dateLayout)
	case *array.Timestamp:
		return timestampText(a, c.i)
	case *array.Time32:
		unit := a.DataType().(*arrow.Time32Type).Unit
		return a.Value(c.i).ToTime(unit).Format(timeLayout)
	case *array.Time64:
		unit := a.DataType().(*arrow.Time64Type).Unit
		return a.Value(c.i).ToTime(unit).Format(timeLayout)
	case *array.Decimal128:
		scale := a.DataType().(*arrow.Decimal128Type).Scale
		return a.Value(c.i).ToString(scale)
	case *array.Decimal256:
		scale := a.DataType().(*arrow.Decimal256Type).Scale
		return a.Value(c.i).ToString(scale)
	case *array.Dictionary:
		return cell{arr: a.Dictionary(), i: a.GetValueIndex(c.i)}.Text()
	default:
		return c.arr.ValueStr(c.i)
	}
}

func (c cell) Value() any {
	switch a := c.arr.(type) {
	case *array.Boolean:
		return a.Value(c.i)
	case *array.Int8, *array.Int16, *array.Int32, *array.Int64,
		*array.Uint8, *array.Uint16, *array.Uint32, *array.Uint64:
		return c.number().Value()
	case *array.Float16:
		return feather.Float(a.Value(c.i).Float32()).Value()
	case *array.Float32:
		return feather.Float(a.Value(c.i)).Value()
	case *array.Float64:
		return feather.Float(a.Value(c.i)).Value()
	case *array.Dictionary:
		return cell{arr: a.Dictionary(), i: a.GetValueIndex(c.i)}.Value()
	default:
		return c.Text()
	}
}

// number returns integer values as feather.Int or feather.Uint.
func (c cell) number() feather.Cell {
	switch a := c.arr.(type) {
	case *array.Int8:
		return feather.Int(a.Value(c.i))
	case *array.Int16:
		return feather.Int(a.Value(c.i))
	case *array.Int32:
		return feather.Int(a.Value(c.i))
	case *array.Int64:
		return feather.Int(a.Value(c.i))
	case *array.Uint8:
		return feather.Uint(a.Value(c.i))
	case *array.Uint16:
		return feather.Uint(a.Value(c.i))
	case *array.Uint32:
		return feather.Uint(a.Value(c.i))
	case *array.Uint64:
		return feather.Uint(a.Value(c.i))
	default:
		return feather.String(c.arr.ValueStr(c.i))
	}
}

// timestampText renders in the column's time zone, with the offset appended
// when the column has one.
func timestampText(a *array.Timestamp, i int) string {
	typ := a.DataType().(*arrow.TimestampType)
	toTime, err := typ.GetToTimeFunc()
	if err != nil {
		return a.ValueStr(i)
	}
	t := toTime(a.Value(i))
	if typ.TimeZone == "" {
		return t.Format(timestampLayout)
	}
	return t.Format(timestampLayout + "-07:00")
}
