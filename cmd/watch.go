package cmd

import (
	"github.com/spf13/cobra"

	"sampledir/core/logger"
	"sampledir/core/runner"
	"sampledir/core/watcher"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <source_dir> <dest_dir> [sample_size] [sample_exts]",
	Short: "Sample continuously as the source directory changes",
	Long: `Runs one sampling pass, then keeps watching source_dir and re-runs
the pass whenever files change. The no-overwrite copy makes re-runs
idempotent: already-sampled files are skipped.`,
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := parseRunOptions(args)
		if err != nil {
			return err
		}

		r, err := runner.New(opts)
		if err != nil {
			return err
		}

		if _, err := r.Run(); err != nil {
			return err
		}

		excludePaths := append([]string{}, opts.Exclude...)
		excludePaths = append(excludePaths, r.SkipPrefixes()...)

		fw, err := watcher.NewFileWatcher(r.SourceRoot, excludePaths)
		if err != nil {
			return err
		}
		defer fw.Close()

		fw.State.OnChange = func() error {
			st, err := r.Run()
			if err != nil {
				return err
			}
			if st.FilesCopied > 0 {
				logger.Info("Picked up %d new file(s)", st.FilesCopied)
			}
			return nil
		}

		return fw.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
