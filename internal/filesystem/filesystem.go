// Package filesystem lists the regular files of a single directory.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/taigrr/file-batcher/internal/extfilter"
	"github.com/taigrr/file-batcher/internal/types"
)

var (
	osReadDir = os.ReadDir
	osStat    = os.Stat
)

// Service lists directories relative to a default input directory.
type Service struct {
	inputDir string
	logger   *zap.Logger
}

// New creates a new Service. Relative and empty folder paths resolve
// against inputDir.
func New(inputDir string, logger *zap.Logger) *Service {
	absPath, _ := filepath.Abs(inputDir)
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		inputDir: absPath,
		logger:   logger,
	}
}

// InputDir returns the default input directory.
func (s *Service) InputDir() string {
	return s.inputDir
}

// ResolveDir resolves a folder path to an absolute directory.
func (s *Service) ResolveDir(folder string) string {
	if folder == "" {
		return s.inputDir
	}
	if filepath.IsAbs(folder) {
		return filepath.Clean(folder)
	}
	return filepath.Join(s.inputDir, folder)
}

// Scan lists the regular files in folder whose names match extensions.
// Subdirectories are not descended into.
func (s *Service) Scan(folder string, extensions []string) types.ListResult {
	return s.ScanDir(s.ResolveDir(folder), extensions)
}

// ScanDir is Scan for a directory that has already been resolved.
func (s *Service) ScanDir(dir string, extensions []string) types.ListResult {
	entries, err := osReadDir(dir)
	if err != nil {
		return scanFailure(dir, err)
	}

	matcher := extfilter.New(extensions)
	var files []string
	for _, entry := range entries {
		if !matcher.Matches(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(path, entry) {
			continue
		}
		files = append(files, path)
	}

	return types.ListResult{
		Dir:     dir,
		Files:   files,
		Success: true,
	}
}

// isRegularFile reports whether entry is a regular file or a symlink to
// one. Broken links and links to directories are not files.
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := osStat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func scanFailure(dir string, err error) types.ListResult {
	var message string
	switch {
	case errors.Is(err, fs.ErrNotExist):
		message = fmt.Sprintf("directory not found: %s", dir)
	case errors.Is(err, fs.ErrPermission):
		message = fmt.Sprintf("permission denied: %s", dir)
	default:
		message = fmt.Sprintf("failed to list directory: %s", dir)
	}
	return types.ListResult{
		Dir:     dir,
		Success: false,
		Message: message,
		Err:     fmt.Errorf("%s: %w", message, err),
	}
}

// ListFiles is Scan with failures logged and reported as an empty list.
func (s *Service) ListFiles(folder string, extensions []string) []string {
	return s.ListDir(s.ResolveDir(folder), extensions)
}

// ListDir is ListFiles for a directory that has already been resolved.
func (s *Service) ListDir(dir string, extensions []string) []string {
	result := s.ScanDir(dir, extensions)
	if result.Success {
		return result.Files
	}

	if errors.Is(result.Err, fs.ErrNotExist) {
		s.logger.Debug("directory does not exist", zap.String("dir", result.Dir))
	} else {
		s.logger.Warn("error listing files", zap.String("dir", result.Dir), zap.Error(result.Err))
	}
	return nil
}
