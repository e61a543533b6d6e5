package convert

import (
	"errors"
	"fmt"
	"strings"

	"rangeshift/internal/rangemap"
)

// ErrInvalidTarget indicates an unrecognized target range token.
var ErrInvalidTarget = errors.New("invalid target range")

// Target names the range an image should be converted to.
type Target string

const (
	// TargetFull converts limited-range sources to full range.
	TargetFull Target = "full"
	// TargetLimited converts full-range sources to limited range.
	TargetLimited Target = "limited"
)

// ParseTarget validates a user-supplied target token.
func ParseTarget(value string) (Target, error) {
	switch Target(strings.ToLower(strings.TrimSpace(value))) {
	case TargetFull:
		return TargetFull, nil
	case TargetLimited:
		return TargetLimited, nil
	default:
		return "", fmt.Errorf("%w: %q (expected full or limited)", ErrInvalidTarget, value)
	}
}

func (t Target) valid() bool {
	return t == TargetFull || t == TargetLimited
}

// Range returns the destination intensity range for the target.
func (t Target) Range() rangemap.Range {
	if t == TargetLimited {
		return rangemap.Limited
	}
	return rangemap.Full
}

// SourceRange returns the range samples are assumed to occupy before conversion.
func (t Target) SourceRange() rangemap.Range {
	if t == TargetLimited {
		return rangemap.Full
	}
	return rangemap.Limited
}

// Suffix returns the destination file name suffix for the target.
func (t Target) Suffix() string {
	return "_" + string(t)
}
