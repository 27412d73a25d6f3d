package stats

import "sampledir/core/logger"

// RunStats accumulates counters for a single sampling run.
type RunStats struct {
	DirsCreated   int `json:"dirs_created"`
	FilesScanned  int `json:"files_scanned"`
	FilesSelected int `json:"files_selected"`
	FilesCopied   int `json:"files_copied"`
	FilesSkipped  int `json:"files_skipped"`
	CopyErrors    int `json:"copy_errors"`
}

// SelectionRate is the share of scanned files that passed filtering and
// group capping, as a percentage.
func (s *RunStats) SelectionRate() float64 {
	if s.FilesScanned == 0 {
		return 0
	}
	return float64(s.FilesSelected) / float64(s.FilesScanned) * 100
}

func (s *RunStats) LogSummary() {
	logger.Info("Sampled %d of %d files (%.1f%%): %d copied, %d already present, %d failed, %d dirs created",
		s.FilesSelected, s.FilesScanned, s.SelectionRate(),
		s.FilesCopied, s.FilesSkipped, s.CopyErrors, s.DirsCreated)
	if s.CopyErrors > 0 {
		logger.Error("%d file(s) failed to copy, see messages above", s.CopyErrors)
	}
}
