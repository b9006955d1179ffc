package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyfmt/internal/config"
	"pyfmt/internal/diagfmt"
	"pyfmt/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Report diagnostics without rewriting anything",
	Long:  `Check runs the full pipeline in advisory mode: lexical warnings and indentation findings are printed, files are left untouched. Files that would be reformatted are listed on stdout.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("config", "", "path to pyfmt.toml (default: nearest above the working directory)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	outputFormat, _ := cmd.Flags().GetString("format")
	configPath, _ := cmd.Flags().GetString("config")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	cfg, _, err := config.Resolve(".", configPath)
	if err != nil {
		return err
	}

	results, err := driver.CheckPaths(cmd.Context(), args, driver.FormatOptions{
		MaxDiagnostics: maxDiagnostics,
		Extensions:     cfg.Format.Extensions,
		Options:        cfg.FormatOptions(),
	})
	if err != nil {
		return err
	}

	var hasErrors bool
	switch outputFormat {
	case "pretty":
		for _, res := range results {
			if res.Err != nil {
				hasErrors = true
				fmt.Fprintf(os.Stderr, "check: %s: %v\n", res.Path, res.Err)
				continue
			}
			if res.Bag.HasWarnings() {
				diagfmt.Pretty(os.Stdout, res.Bag, res.FileSet, diagfmt.PrettyOpts{
					Color:     useColor(cmd, os.Stdout),
					ShowNotes: true,
				})
			}
			if res.Changed && !quiet {
				fmt.Fprintf(os.Stdout, "%s: would be reformatted\n", res.Path)
			}
		}
	case "json":
		if err := renderFmtJSON(results, true, false); err != nil {
			return err
		}
		for _, res := range results {
			if res.Err != nil {
				hasErrors = true
			}
		}
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("check: failed to process some files")
	}
	return nil
}
