package cmd

import (
	"fmt"
	"strconv"

	"sampledir/core/config"
	"sampledir/core/logger"
	"sampledir/core/runner"
)

// parseRunOptions turns positional arguments into runner options.
// Config supplies the defaults; arguments always win.
func parseRunOptions(args []string) (runner.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	opts := runner.Options{
		SourceDir:  args[0],
		DestDir:    args[1],
		SampleSize: cfg.SampleSize,
		FilterSpec: cfg.SampleExts,
		Exclude:    cfg.Exclude,
	}

	if len(args) >= 3 {
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid sample_size %q: must be a non-negative integer", args[2])
		}
		opts.SampleSize = n
	}

	if len(args) >= 4 {
		opts.FilterSpec = args[3]
	}

	return opts, nil
}
