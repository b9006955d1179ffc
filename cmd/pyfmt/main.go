package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pyfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pyfmt",
	Short: "Token-based source reformatter for the in-house Python dialect",
	Long:  `pyfmt rewrites source files with explicit statement terminators, normalized bracket padding and collapsed multi-line blocks, and reports advisory indentation diagnostics.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 256, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color mode against the actual destination.
func useColor(cmd *cobra.Command, dest *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(dest)
	}
}
