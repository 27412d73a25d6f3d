package models

import (
	"path/filepath"
	"strings"
)

// NoExtension is the grouping category for file names without a dot.
const NoExtension = "<none>"

// GroupKey identifies a sample group: all files in the same source
// directory that share an extension.
type GroupKey struct {
	Dir string
	Ext string
}

// FileEntry is a single file discovered under the source root, with its
// grouping fields precomputed.
type FileEntry struct {
	RelPath string
	Dir     string
	Ext     string
}

// NewFileEntry decomposes a slash-agnostic relative path into its grouping
// fields. Files directly under the source root get an empty Dir. The
// extension is everything after the last dot in the file name.
func NewFileEntry(relPath string) FileEntry {
	dir := filepath.Dir(relPath)
	if dir == "." {
		dir = ""
	}

	name := filepath.Base(relPath)
	ext := NoExtension
	if idx := strings.LastIndex(name, "."); idx != -1 {
		ext = name[idx+1:]
	}

	return FileEntry{
		RelPath: relPath,
		Dir:     dir,
		Ext:     ext,
	}
}

func (f FileEntry) Key() GroupKey {
	return GroupKey{Dir: f.Dir, Ext: f.Ext}
}
