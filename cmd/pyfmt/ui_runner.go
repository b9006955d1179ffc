package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pyfmt/internal/driver"
	"pyfmt/internal/ui"
)

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFormatWithUI drives FormatPaths in the background while a Bubble
// Tea program renders its progress events. The driver stays strictly
// sequential; only the rendering runs alongside it.
func runFormatWithUI(ctx context.Context, title string, files []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		opts := opts
		opts.Events = events
		results, err := driver.FormatPaths(ctx, files, opts)
		outcomeCh <- formatOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
