package format

import (
	"pyfmt/internal/source"
)

// DecisionKind names a category of rewrite the pipeline can perform.
type DecisionKind uint8

const (
	// DecisionPad is bracket padding normalization.
	DecisionPad DecisionKind = iota
	// DecisionTerminator is statement terminator insertion or removal.
	DecisionTerminator
	// DecisionFString is f-string prefix stripping.
	DecisionFString
	// DecisionCollapse is multi-line block flattening.
	DecisionCollapse
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionPad:
		return "pad"
	case DecisionTerminator:
		return "terminator"
	case DecisionFString:
		return "fstring"
	case DecisionCollapse:
		return "collapse"
	}
	return "unknown"
}

// Decision records one considered rewrite: either applied, or skipped
// with the reason. Pass-through on ambiguous input is an explicit
// policy here, not a swallowed failure, so tests can assert on when a
// rewrite was skipped versus applied.
type Decision struct {
	Kind    DecisionKind
	Span    source.Span
	Applied bool
	Reason  string // empty when applied without caveats
}

// Result is the outcome of formatting one file.
type Result struct {
	// Output is the full formatted text.
	Output []byte
	// Changed reports whether Output differs from the input bytes.
	Changed bool
	// Decisions lists every applied or skipped rewrite in order.
	Decisions []Decision
}

// AppliedCount returns how many decisions were applied.
func (r *Result) AppliedCount(kind DecisionKind) int {
	n := 0
	for _, d := range r.Decisions {
		if d.Kind == kind && d.Applied {
			n++
		}
	}
	return n
}

// SkippedReasons returns the reasons for skipped decisions of a kind.
func (r *Result) SkippedReasons(kind DecisionKind) []string {
	var out []string
	for _, d := range r.Decisions {
		if d.Kind == kind && !d.Applied {
			out = append(out, d.Reason)
		}
	}
	return out
}
