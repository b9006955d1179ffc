package format

// Options configures the formatting pipeline.
type Options struct {
	// MaxLineLen is the display-width budget for collapsing multi-line
	// bracketed blocks to a single line.
	MaxLineLen int
	// IndentWidth is the expected indentation step for the advisory
	// indentation checker.
	IndentWidth int
	// Collapse enables the multi-line block collapser.
	Collapse bool
	// StripFStringPrefix removes the f prefix from f-strings without
	// placeholders (suppressed per line by "# noqa ... F541").
	StripFStringPrefix bool
	// CheckIndent enables the advisory indentation warnings.
	CheckIndent bool
}

// DefaultOptions mirrors the historical defaults of the tool.
func DefaultOptions() Options {
	return Options{
		MaxLineLen:         200,
		IndentWidth:        4,
		Collapse:           true,
		StripFStringPrefix: true,
		CheckIndent:        true,
	}
}
