package feather

import (
	"math"
	"strconv"
)

// Cell is a single table value. A nil Cell is null.
type Cell interface {
	// Text returns the canonical textual form used by the text formats.
	Text() string
	// Value returns the typed value used by the structured formats.
	Value() any
}

// Text returns the canonical text of c. Null renders as "".
func Text(c Cell) string {
	if c == nil {
		return ""
	}
	return c.Text()
}

// Value returns the typed value of c. Null returns nil.
func Value(c Cell) any {
	if c == nil {
		return nil
	}
	return c.Value()
}

// String is a text cell.
type String string

func (s String) Text() string { return string(s) }
func (s String) Value() any   { return string(s) }

// Int is a signed integer cell.
type Int int64

func (i Int) Text() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Value() any   { return int64(i) }

// Uint is an unsigned integer cell.
type Uint uint64

func (u Uint) Text() string { return strconv.FormatUint(uint64(u), 10) }
func (u Uint) Value() any   { return uint64(u) }

// Float is a floating point cell.
type Float float64

func (f Float) Text() string { return FormatFloat(float64(f), 64) }

// Value returns the float, or its text for NaN and infinities which have no
// JSON representation.
func (f Float) Value() any {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.Text()
	}
	return v
}

// Bool is a boolean cell rendered as true/false.
type Bool bool

func (b Bool) Text() string { return strconv.FormatBool(bool(b)) }
func (b Bool) Value() any   { return bool(b) }

// FormatFloat renders f with the fewest digits that round-trip at bitSize.
// Magnitudes below 1e-4 or at least 1e21 use exponent notation.
func FormatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
