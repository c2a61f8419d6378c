package model

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"math"
)

type TimeUnit uint8

const (
	UnitFs TimeUnit = iota
	UnitPs
	UnitNs
	UnitUs
	UnitMs
	UnitS
)

func (u TimeUnit) String() string {
	switch u {
	case UnitFs:
		return "fs"
	case UnitPs:
		return "ps"
	case UnitNs:
		return "ns"
	case UnitUs:
		return "us"
	case UnitMs:
		return "ms"
	case UnitS:
		return "s"
	default:
		return fmt.Sprintf("TimeUnit(%d)", uint8(u))
	}
}

// factor is the number of base ticks per unit used by ScaleFactor.
func (u TimeUnit) factor() float64 {
	switch u {
	case UnitFs:
		return 1e15
	case UnitPs:
		return 1e12
	case UnitNs:
		return 1e9
	case UnitUs:
		return 1e6
	case UnitMs:
		return 1e3
	case UnitS:
		return 1
	default:
		panic("invalid time unit")
	}
}

// TimeScale is a magnitude expressed in a display unit. It is used only for
// presentation; all comparisons happen on Time values in the base unit.
type TimeScale struct {
	Time float64
	Unit TimeUnit
}

var DefaultScale = TimeScale{Time: 1, Unit: UnitFs}

func (ts TimeScale) ScaleFactor() float64 {
	return ts.Time * ts.Unit.factor()
}

func (ts TimeScale) String() string {
	return FormatTimeUnit(ts)
}

// FormatTime rounds t to the nearest integer tick and renders it with
// thousands separators.
func FormatTime(t Time) string {
	return humanize.Comma(int64(math.Round(t)))
}

func FormatTimeUnit(ts TimeScale) string {
	return FormatTime(ts.Time) + " " + ts.Unit.String()
}
