package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"pyfmt/internal/format"
	"pyfmt/internal/source"
)

// DecisionJSON is one rewrite decision in JSON form.
type DecisionJSON struct {
	Kind     string       `json:"kind"`
	Applied  bool         `json:"applied"`
	Reason   string       `json:"reason,omitempty"`
	Location LocationJSON `json:"location"`
}

// FormatDecisionsPretty writes the rewrite decision log, one line per
// decision. Skipped decisions carry their reason so a surprising
// non-rewrite can be traced to the rule that held it back.
func FormatDecisionsPretty(w io.Writer, decisions []format.Decision, fs *source.FileSet) {
	for _, d := range decisions {
		f := fs.Get(d.Span.File)
		start, _ := fs.Resolve(d.Span)

		verdict := "applied"
		if !d.Applied {
			verdict = "skipped"
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s", f.Path, start.Line, start.Col, d.Kind, verdict)
		if d.Reason != "" {
			fmt.Fprintf(w, " (%s)", d.Reason)
		}
		fmt.Fprintln(w)
	}
}

// BuildDecisionsJSON converts a decision log into its JSON form.
func BuildDecisionsJSON(decisions []format.Decision, fs *source.FileSet) []DecisionJSON {
	out := make([]DecisionJSON, 0, len(decisions))
	for _, d := range decisions {
		out = append(out, DecisionJSON{
			Kind:     d.Kind.String(),
			Applied:  d.Applied,
			Reason:   d.Reason,
			Location: makeLocation(d.Span, fs, true),
		})
	}
	return out
}

// FormatDecisionsJSON writes the decision log as indented JSON.
func FormatDecisionsJSON(w io.Writer, decisions []format.Decision, fs *source.FileSet) error {
	out := BuildDecisionsJSON(decisions, fs)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
