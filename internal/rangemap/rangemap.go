package rangemap

import (
	"fmt"
	"math"
)

// Range describes a closed interval of 8-bit intensity values.
type Range struct {
	Min uint8
	Max uint8
}

// Full is the full-range encoding using the entire 0-255 span.
var Full = Range{Min: 0, Max: 255}

// Limited is the broadcast-style encoding with active picture data in 16-235.
var Limited = Range{Min: 16, Max: 235}

// Valid reports whether the interval is non-degenerate.
func (r Range) Valid() bool {
	return r.Min < r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Warning identifies an advisory condition observed during conversion.
type Warning int

const (
	// WarningInputOutOfRange flags samples outside the source range before
	// clipping. Limited-range material with sub-black or super-white values
	// triggers this.
	WarningInputOutOfRange Warning = iota
	// WarningOutputClipped flags samples the final defensive clamp had to
	// correct. The scale formula cannot produce these for valid ranges, so
	// seeing one indicates a bug.
	WarningOutputClipped
)

func (w Warning) String() string {
	switch w {
	case WarningInputOutOfRange:
		return "input_out_of_range"
	case WarningOutputClipped:
		return "output_clipped"
	default:
		return fmt.Sprintf("warning(%d)", int(w))
	}
}

// WarnFunc receives advisory warnings with the number of affected samples.
// A nil WarnFunc suppresses warnings; conversion proceeds either way.
type WarnFunc func(w Warning, samples int, from, to Range)

// Convert maps every sample from the source interval to the destination
// interval: clamp to from, affine scale, round to nearest, clamp to to.
// The input slice is never modified; a new slice is returned.
func Convert(samples []uint8, from, to Range, warn WarnFunc) ([]uint8, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("source range %s: min must be below max", from)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("destination range %s: min must be below max", to)
	}

	outOfRange := 0
	for _, v := range samples {
		if v < from.Min || v > from.Max {
			outOfRange++
		}
	}
	if outOfRange > 0 && warn != nil {
		warn(WarningInputOutOfRange, outOfRange, from, to)
	}

	// The 8-bit domain makes a per-value table cheaper than per-sample math.
	var lut [256]uint8
	var clippedValue [256]bool
	scale := float64(to.Max-to.Min) / float64(from.Max-from.Min)
	for i := 0; i < 256; i++ {
		v := uint8(i)
		if v < from.Min {
			v = from.Min
		} else if v > from.Max {
			v = from.Max
		}
		rounded := int(math.Round(float64(v-from.Min)*scale)) + int(to.Min)
		if rounded < int(to.Min) {
			rounded = int(to.Min)
			clippedValue[i] = true
		} else if rounded > int(to.Max) {
			rounded = int(to.Max)
			clippedValue[i] = true
		}
		lut[i] = uint8(rounded)
	}

	out := make([]uint8, len(samples))
	clipped := 0
	for i, v := range samples {
		if clippedValue[v] {
			clipped++
		}
		out[i] = lut[v]
	}
	if clipped > 0 && warn != nil {
		warn(WarningOutputClipped, clipped, from, to)
	}
	return out, nil
}

// FullToLimited converts samples from full range (0-255) to limited range (16-235).
func FullToLimited(samples []uint8, warn WarnFunc) []uint8 {
	out, _ := Convert(samples, Full, Limited, warn)
	return out
}

// LimitedToFull converts samples from limited range (16-235) to full range (0-255).
func LimitedToFull(samples []uint8, warn WarnFunc) []uint8 {
	out, _ := Convert(samples, Limited, Full, warn)
	return out
}
