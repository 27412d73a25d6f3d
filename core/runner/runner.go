package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sampledir/core/copier"
	"sampledir/core/filter"
	"sampledir/core/logger"
	"sampledir/core/replicator"
	"sampledir/core/sampler"
	"sampledir/core/stats"
	"sampledir/core/walker"
)

// Options configures a sampling run. Defaults come from config.Load;
// positional arguments override them before the Runner is built.
type Options struct {
	SourceDir  string
	DestDir    string
	SampleSize int
	FilterSpec string
	Exclude    []string
}

// SetupError marks failures that make the whole run impossible: a missing
// source directory, an uncreatable destination, or a failure while
// replicating the directory tree. The CLI maps these to exit code 2.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string { return e.Err.Error() }
func (e *SetupError) Unwrap() error { return e.Err }

// Runner drives the two phases of a sampling run: replicate the directory
// tree, then select and copy files. Replication always completes before the
// first copy so every destination directory exists up front.
type Runner struct {
	SourceRoot string
	DestRoot   string

	sampleSize   int
	filter       filter.Filter
	walker       *walker.SourceWalkerImpl
	skipPrefixes []string
}

// SkipPrefixes returns source-relative path prefixes the run avoids, such
// as a destination nested inside the source. The watch command excludes
// the same prefixes from its watchers.
func (r *Runner) SkipPrefixes() []string {
	return r.skipPrefixes
}

func New(opts Options) (*Runner, error) {
	sourceRoot, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, &SetupError{Err: fmt.Errorf("failed to resolve source dir: %w", err)}
	}
	destRoot, err := filepath.Abs(opts.DestDir)
	if err != nil {
		return nil, &SetupError{Err: fmt.Errorf("failed to resolve dest dir: %w", err)}
	}

	info, err := os.Stat(sourceRoot)
	if err != nil {
		return nil, &SetupError{Err: fmt.Errorf("source directory %s does not exist: %w", sourceRoot, err)}
	}
	if !info.IsDir() {
		return nil, &SetupError{Err: fmt.Errorf("source path %s is not a directory", sourceRoot)}
	}

	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return nil, &SetupError{Err: fmt.Errorf("failed to create destination directory %s: %w", destRoot, err)}
	}

	// A destination nested inside the source would be sampled into itself.
	var skipPrefixes []string
	if rel, err := filepath.Rel(sourceRoot, destRoot); err == nil &&
		rel != "." && !strings.HasPrefix(rel, "..") {
		logger.Debug("Destination is inside source, excluding %s from traversal", rel)
		skipPrefixes = append(skipPrefixes, rel)
	}

	return &Runner{
		SourceRoot:   sourceRoot,
		DestRoot:     destRoot,
		sampleSize:   opts.SampleSize,
		filter:       filter.Parse(opts.FilterSpec),
		walker:       walker.NewSourceWalker(sourceRoot, opts.Exclude, skipPrefixes),
		skipPrefixes: skipPrefixes,
	}, nil
}

// Run executes one full sampling pass. Per-file copy failures are logged
// and counted but do not abort the run or surface in the returned error.
func (r *Runner) Run() (*stats.RunStats, error) {
	st := &stats.RunStats{}

	dirs, files, err := r.walker.Walk()
	if err != nil {
		return st, &SetupError{Err: err}
	}
	st.FilesScanned = len(files)

	created, err := replicator.Replicate(r.DestRoot, dirs)
	st.DirsCreated = created
	if err != nil {
		return st, &SetupError{Err: err}
	}
	logger.Debug("Replicated %d directories (%d created)", len(dirs), created)

	// Fresh counters per pass: re-runs rescan everything and rely on the
	// no-overwrite skip for idempotence.
	s := sampler.New(r.sampleSize, r.filter)
	c := copier.NewCopier(r.SourceRoot, r.DestRoot)

	for _, f := range files {
		if !s.Admit(f) {
			continue
		}
		st.FilesSelected++

		copied, err := c.CopyFile(f)
		if err != nil {
			logger.Error("Copy failed for %s: %v", f.RelPath, err)
			st.CopyErrors++
			continue
		}
		if copied {
			st.FilesCopied++
		} else {
			st.FilesSkipped++
		}
	}

	st.LogSummary()
	return st, nil
}
