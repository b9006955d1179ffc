package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyfmt/internal/config"
	"pyfmt/internal/diagfmt"
	"pyfmt/internal/driver"
	"pyfmt/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [path...]",
	Short: "Format source files",
	Long:  `Fmt rewrites files (or stdin when no paths are given) with statement terminators, bracket padding and block collapsing. Without --in-place the formatted text goes to stdout.`,
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("in-place", "i", false, "rewrite files instead of printing to stdout")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout (default without --in-place)")
	fmtCmd.Flags().Bool("check", false, "report files that would change, without writing")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().String("config", "", "path to pyfmt.toml (default: nearest above the working directory)")
	fmtCmd.Flags().Bool("no-cache", false, "bypass the clean-file cache")
	fmtCmd.Flags().Bool("explain", false, "print the per-file rewrite decision log")
	fmtCmd.Flags().Int("max-line-len", 0, "collapse budget in display cells (overrides pyfmt.toml)")
	fmtCmd.Flags().String("ui", "auto", "progress UI for multi-file --in-place runs (auto|on|off)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	inPlace, _ := cmd.Flags().GetBool("in-place")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	check, _ := cmd.Flags().GetBool("check")
	outputFormat, _ := cmd.Flags().GetString("format")
	configPath, _ := cmd.Flags().GetString("config")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	explain, _ := cmd.Flags().GetBool("explain")
	uiFlag, _ := cmd.Flags().GetString("ui")

	if check && (inPlace || toStdout) {
		return fmt.Errorf("fmt: --check cannot be combined with --in-place or --stdout")
	}
	if inPlace && toStdout {
		return fmt.Errorf("fmt: --in-place cannot be combined with --stdout")
	}
	if toStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	cfg, _, err := config.Resolve(".", configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-line-len") {
		maxLineLen, _ := cmd.Flags().GetInt("max-line-len")
		if maxLineLen <= 0 {
			return fmt.Errorf("fmt: --max-line-len must be positive")
		}
		cfg.Format.MaxLineLen = maxLineLen
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	opts := driver.FormatOptions{
		Check:          check,
		Stdout:         !inPlace && !check,
		NoCache:        noCache,
		MaxDiagnostics: maxDiagnostics,
		Extensions:     cfg.Format.Extensions,
		Options:        cfg.FormatOptions(),
	}

	if len(args) == 0 {
		return runFmtStdin(cmd, opts, quiet)
	}

	if inPlace && !noCache {
		// Best effort: a broken cache must never block formatting.
		if cache, err := driver.OpenDiskCache("pyfmt"); err == nil {
			opts.Cache = cache
		}
	}

	timer := observ.NewTimer()
	phase := timer.Begin("format")

	var results []driver.FormatResult
	withTUI := inPlace && len(args) > 1 && outputFormat == "text" && !quiet && shouldUseTUI(mode)
	if withTUI {
		results, err = runFormatWithUI(cmd.Context(), "pyfmt", args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return err
	}

	if !quiet {
		printDiagnostics(cmd, results)
	}
	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		if opts.Stdout {
			renderFmtStdout(results, &hasErrors)
		} else {
			renderFmtText(results, check, quiet, &hasErrors, &hasChanges)
		}
		if explain {
			renderDecisions(results)
		}
	case "json":
		if err := renderFmtJSON(results, check, explain); err != nil {
			return err
		}
		for _, res := range results {
			if res.Err != nil {
				hasErrors = true
			}
			if res.Changed {
				hasChanges = true
			}
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// runFmtStdin is the filter mode: one pass, stdin to stdout, warnings
// on stderr.
func runFmtStdin(cmd *cobra.Command, opts driver.FormatOptions, quiet bool) error {
	res, err := driver.FormatStdin(cmd.Context(), os.Stdin, opts)
	if err != nil {
		return err
	}
	if !quiet && res.Bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	_, err = os.Stdout.Write(res.Formatted)
	return err
}

func printDiagnostics(cmd *cobra.Command, results []driver.FormatResult) {
	popts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}
	for _, res := range results {
		if res.Bag == nil || !res.Bag.HasWarnings() {
			continue
		}
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, popts)
	}
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func renderDecisions(results []driver.FormatResult) {
	for _, res := range results {
		if res.Err != nil || len(res.Decisions) == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s:\n", res.Path)
		diagfmt.FormatDecisionsPretty(os.Stdout, res.Decisions, res.FileSet)
	}
}

func renderFmtJSON(results []driver.FormatResult, check, explain bool) error {
	type jsonResult struct {
		Path        string                   `json:"path"`
		Changed     bool                     `json:"changed"`
		Error       string                   `json:"error,omitempty"`
		CheckRun    bool                     `json:"check"`
		Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
		Decisions   []diagfmt.DecisionJSON   `json:"decisions,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if res.Bag != nil && res.Bag.Len() > 0 {
			out := diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			})
			jr.Diagnostics = out.Diagnostics
		}
		if explain && len(res.Decisions) > 0 {
			jr.Decisions = diagfmt.BuildDecisionsJSON(res.Decisions, res.FileSet)
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
