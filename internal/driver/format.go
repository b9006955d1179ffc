package driver

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"pyfmt/internal/diag"
	"pyfmt/internal/format"
	"pyfmt/internal/source"
)

// SourceExt is the file extension collected from directories.
const SourceExt = ".py"

// FormatOptions configures a formatting run.
type FormatOptions struct {
	// Check reports whether files would change without writing.
	Check bool
	// Stdout returns formatted content in the results instead of
	// writing files back.
	Stdout bool
	// NoCache bypasses the clean-file disk cache.
	NoCache        bool
	MaxDiagnostics int
	// Extensions are the suffixes collected from directories; empty
	// means SourceExt only.
	Extensions []string
	Options    format.Options
	// Events receives progress updates when non-nil. The driver does
	// not close the channel.
	Events chan<- Event
	// Cache is the optional disk cache; nil disables caching the same
	// way NoCache does.
	Cache *DiskCache
}

// FormatResult captures the outcome for a single file. Err isolates a
// per-file failure without aborting the rest of the run.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
	Decisions []format.Decision
	// Bag holds the file's diagnostics; FileSet resolves their spans.
	Bag     *diag.Bag
	FileSet *source.FileSet
}

// FormatPaths formats the given files or directories (recursively
// collecting .py files), strictly one file at a time. Files are
// processed independently: an unreadable file yields a result with Err
// set and the run continues.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths, opts.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	for _, path := range files {
		emit(opts.Events, Event{File: path, Stage: StageCollect, Status: StatusQueued})
	}

	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		emit(opts.Events, Event{File: path, Stage: StageFormat, Status: StatusWorking})
		result := formatSingleFile(path, opts)

		if result.Err == nil && !opts.Check && !opts.Stdout && result.Changed {
			emit(opts.Events, Event{File: path, Stage: StageWrite, Status: StatusWorking})
			result.Err = writeBack(path, result.Formatted)
		}

		status := StatusDone
		if result.Err != nil {
			status = StatusError
		}
		emit(opts.Events, Event{File: path, Stage: StageWrite, Status: status})
		results = append(results, result)
	}

	return results, nil
}

// FormatStdin formats content read from r as a single virtual file.
func FormatStdin(ctx context.Context, r io.Reader, opts FormatOptions) (FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return FormatResult{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return FormatResult{}, err
	}

	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual("<stdin>", data)
	return runPipeline(fileSet, id, "<stdin>", opts), nil
}

func formatSingleFile(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		result.Err = err
		return result
	}

	cache := opts.Cache
	if opts.NoCache {
		cache = nil
	}
	key := cacheKey(fileSet.Get(id).Hash, opts.Options)
	if cache.IsClean(key) {
		result.Formatted = fileSet.Get(id).Content
		result.Bag = diag.NewBag(maxDiag(opts))
		result.FileSet = fileSet
		return result
	}

	result = runPipeline(fileSet, id, path, opts)
	if result.Err == nil && !result.Changed && !result.Bag.HasWarnings() {
		cache.MarkClean(key)
	}
	return result
}

func runPipeline(fileSet *source.FileSet, id source.FileID, path string, opts FormatOptions) FormatResult {
	bag := diag.NewBag(maxDiag(opts))
	res := format.FormatFile(fileSet, id, opts.Options, diag.BagReporter{Bag: bag})
	bag.Sort()

	return FormatResult{
		Path:      path,
		Changed:   res.Changed,
		Formatted: res.Output,
		Decisions: res.Decisions,
		Bag:       bag,
		FileSet:   fileSet,
	}
}

func maxDiag(opts FormatOptions) int {
	if opts.MaxDiagnostics > 0 {
		return opts.MaxDiagnostics
	}
	return diag.DefaultCap
}

// writeBack preserves the file's permission bits when rewriting it.
func writeBack(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, content, mode.Perm())
}

func collectSourceFiles(ctx context.Context, paths []string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = []string{SourceExt}
	}
	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = struct{}{}
	}

	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if _, ok := wanted[filepath.Ext(path)]; ok {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// Explicitly named files are formatted regardless of extension.
		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}
