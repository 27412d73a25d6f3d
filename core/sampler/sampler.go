package sampler

import (
	"sampledir/core/filter"
	"sampledir/core/logger"
	"sampledir/core/models"
)

// Sampler keeps the first sampleSize filter-passing files of each
// (directory, extension) group, in input order. Counters live for the
// lifetime of the Sampler, one instance per scan.
type Sampler struct {
	sampleSize int
	filter     filter.Filter
	counts     map[models.GroupKey]int
}

func New(sampleSize int, f filter.Filter) *Sampler {
	return &Sampler{
		sampleSize: sampleSize,
		filter:     f,
		counts:     make(map[models.GroupKey]int),
	}
}

// Admit decides whether a single file is selected. Selection increments the
// group counter regardless of whether the file is later copied successfully.
func (s *Sampler) Admit(f models.FileEntry) bool {
	if !s.filter.Allows(f.Ext) {
		logger.Debug("Filtered out by extension: %s", f.RelPath)
		return false
	}

	key := f.Key()
	if s.counts[key] >= s.sampleSize {
		logger.Debug("Group (%s, %s) full, skipping %s", key.Dir, key.Ext, f.RelPath)
		return false
	}

	s.counts[key]++
	return true
}

// Select filters a batch of files, preserving input order.
func (s *Sampler) Select(files []models.FileEntry) []models.FileEntry {
	var selected []models.FileEntry
	for _, f := range files {
		if s.Admit(f) {
			selected = append(selected, f)
		}
	}
	return selected
}

// GroupCount returns how many files have been selected for a group so far.
func (s *Sampler) GroupCount(key models.GroupKey) int {
	return s.counts[key]
}
