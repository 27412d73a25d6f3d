package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"sampledir/core/logger"
	"sampledir/core/runner"
)

var rootCmd = &cobra.Command{
	Use:   "sampledir <source_dir> <dest_dir> [sample_size] [sample_exts]",
	Short: "Mirror a directory tree and copy a bounded sample of its files",
	Long: `Sampledir replicates the subdirectory structure of source_dir under
dest_dir, then copies at most sample_size files per (directory, extension)
group. sample_exts is a comma-separated extension list; a leading '!' on the
list switches it to exclude mode. Existing destination files are never
overwritten, so re-runs are safe.`,
	Args: cobra.RangeArgs(2, 4),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.SetErrorWriter()
		if logfile != "" {
			if err := logger.SetLogFile(logfile); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := parseRunOptions(args)
		if err != nil {
			return err
		}

		r, err := runner.New(opts)
		if err != nil {
			return err
		}

		_, err = r.Run()
		return err
	},
}

var logfile string
var verbose bool

// Execute runs the CLI and maps error classes to exit codes: 2 for setup
// and replication failures, 1 for usage errors. Per-file copy failures are
// logged during the run and do not change the exit code.
func Execute() {
	rootCmd.SetOut(os.Stdout)
	err := rootCmd.Execute()
	logger.CloseLogFile()
	if err != nil {
		var setupErr *runner.SetupError
		if errors.As(err, &setupErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
