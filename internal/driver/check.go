package driver

import (
	"context"
)

// CheckPaths runs the formatting pipeline in advisory mode: nothing is
// written, and each result reports whether the file would change plus
// the diagnostics the pipeline produced.
func CheckPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	opts.Check = true
	opts.Stdout = false
	return FormatPaths(ctx, paths, opts)
}
