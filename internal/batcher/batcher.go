// Package batcher lists, filters, sorts and formats the files of one directory.
package batcher

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/taigrr/file-batcher/internal/extfilter"
	"github.com/taigrr/file-batcher/internal/filesystem"
	"github.com/taigrr/file-batcher/internal/sorter"
	"github.com/taigrr/file-batcher/internal/types"
)

// Service runs batch operations. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	fileSystem *filesystem.Service
	sorter     *sorter.Sorter
	logger     *zap.Logger
}

// New creates a new Service.
func New(fs *filesystem.Service, st *sorter.Sorter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if st == nil {
		st = sorter.New(logger)
	}
	return &Service{
		fileSystem: fs,
		sorter:     st,
		logger:     logger,
	}
}

// Batch lists the files selected by params and renders them. It never
// fails: listing problems are logged and reported as no files found.
func (s *Service) Batch(ctx context.Context, params types.BatchParams) types.BatchResult {
	dir := s.fileSystem.ResolveDir(params.FolderPath)
	if err := ctx.Err(); err != nil {
		s.logger.Debug("batch cancelled before listing", zap.String("dir", dir), zap.Error(err))
		return types.EmptyBatchResult(dir)
	}

	extensions := extfilter.Resolve(params.FileFilter, params.FileExtension)
	files := s.fileSystem.ListDir(dir, extensions)
	files = s.sorter.Sort(files, params.SortBy)

	s.logger.Debug("batch listed files",
		zap.String("dir", dir),
		zap.Strings("extensions", extensions),
		zap.String("sort_by", string(params.SortBy)),
		zap.Int("count", len(files)),
	)

	return Format(dir, files)
}

// Format renders sorted files as a numbered name list and a path list.
func Format(dir string, files []string) types.BatchResult {
	if len(files) == 0 {
		return types.EmptyBatchResult(dir)
	}

	var names strings.Builder
	for i, path := range files {
		if i > 0 {
			names.WriteByte('\n')
		}
		names.WriteString(strconv.Itoa(i))
		names.WriteString(": ")
		names.WriteString(filepath.Base(path))
	}

	return types.BatchResult{
		FileList:     names.String(),
		FilePathList: strings.Join(files, "\n"),
		Count:        len(files),
		Dir:          dir,
	}
}
