package convert

// OutcomeKind classifies what happened to one candidate file.
type OutcomeKind string

const (
	// OutcomeConverted means a new destination file was written.
	OutcomeConverted OutcomeKind = "converted"
	// OutcomeSkippedTagged means the base name already carried a range suffix.
	OutcomeSkippedTagged OutcomeKind = "skipped_tagged"
	// OutcomeSkippedExists means the destination file already exists.
	OutcomeSkippedExists OutcomeKind = "skipped_exists"
	// OutcomeFailed means the conversion errored before writing a destination.
	OutcomeFailed OutcomeKind = "failed"
)

// Outcome reports the disposition of one file.
type Outcome struct {
	Kind        OutcomeKind
	Source      string
	Destination string
	Target      Target

	// InputOutOfRange counts samples that fell outside the source range and
	// had to be clipped before scaling.
	InputOutOfRange int
	// OutputClipped counts samples corrected by the defensive final clamp.
	OutputClipped int

	// Err carries the failure for OutcomeFailed entries produced by scans.
	Err error
}

// Converted reports whether a destination file was written.
func (o Outcome) Converted() bool {
	return o.Kind == OutcomeConverted
}
