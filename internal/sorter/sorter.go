// Package sorter orders file paths by name, modification time or size.
package sorter

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/taigrr/file-batcher/internal/types"
)

var osStat = os.Stat

// Sorter orders file paths by a SortKey.
type Sorter struct {
	logger *zap.Logger
}

// New creates a new Sorter.
func New(logger *zap.Logger) *Sorter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sorter{logger: logger}
}

type fileEntry struct {
	path    string
	name    string
	modTime time.Time
	size    int64
}

// Sort returns files ordered by key. The sort is stable, so entries with
// equal keys keep their relative order. An unknown key returns files as
// given. Files that cannot be stat'ed for a date or size sort are dropped.
func (s *Sorter) Sort(files []string, key types.SortKey) []string {
	if len(files) == 0 {
		return files
	}

	var less func(a, b fileEntry) bool
	needStat := true
	switch key {
	case types.SortNameAsc:
		needStat = false
		less = func(a, b fileEntry) bool { return a.name < b.name }
	case types.SortNameDesc:
		needStat = false
		less = func(a, b fileEntry) bool { return a.name > b.name }
	case types.SortDateAsc:
		less = func(a, b fileEntry) bool { return a.modTime.Before(b.modTime) }
	case types.SortDateDesc:
		less = func(a, b fileEntry) bool { return a.modTime.After(b.modTime) }
	case types.SortSizeAsc:
		less = func(a, b fileEntry) bool { return a.size < b.size }
	case types.SortSizeDesc:
		less = func(a, b fileEntry) bool { return a.size > b.size }
	default:
		s.logger.Debug("unknown sort key, keeping listing order", zap.String("sort_by", string(key)))
		return files
	}

	entries := s.collect(files, needStat)
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	sorted := make([]string, len(entries))
	for i, entry := range entries {
		sorted[i] = entry.path
	}
	return sorted
}

func (s *Sorter) collect(files []string, needStat bool) []fileEntry {
	caser := cases.Fold()
	entries := make([]fileEntry, 0, len(files))
	for _, path := range files {
		entry := fileEntry{
			path: path,
			name: caser.String(filepath.Base(path)),
		}
		if needStat {
			info, err := osStat(path)
			if err != nil {
				s.logger.Warn("skipping file that could not be stat'ed", zap.String("path", path), zap.Error(err))
				continue
			}
			entry.modTime = info.ModTime()
			entry.size = info.Size()
		}
		entries = append(entries, entry)
	}
	return entries
}
