package feather

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is returned by Select when asked for fewer than zero rows.
var ErrNegativeCount = errors.New("row count must be non-negative")

// Mode selects rows from the start or the end of a table.
type Mode int

const (
	Head Mode = iota
	Tail
)

func (m Mode) String() string {
	switch m {
	case Head:
		return "head"
	case Tail:
		return "tail"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "head" or "tail".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "head":
		return Head, nil
	case "tail":
		return Tail, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Slice is a contiguous row range.
type Slice struct {
	Offset int
	Length int
}

// End returns the index one past the last row of s.
func (s Slice) End() int { return s.Offset + s.Length }

// Select turns a request for n rows into a Slice of a table with total rows.
// Head starts at row 0; Tail ends at the last row. Both return
// min(n, total) rows in table order.
func Select(n, total int, mode Mode) (Slice, error) {
	if n < 0 {
		return Slice{}, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	total = max(total, 0)
	switch mode {
	case Head:
		return Slice{Offset: 0, Length: min(n, total)}, nil
	case Tail:
		offset := max(0, total-n)
		return Slice{Offset: offset, Length: total - offset}, nil
	default:
		return Slice{}, fmt.Errorf("unknown mode %s", mode)
	}
}
