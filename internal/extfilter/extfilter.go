// Package extfilter resolves extension sets and matches file names against them.
package extfilter

import (
	"slices"
	"strings"

	"github.com/taigrr/file-batcher/internal/types"
)

var (
	imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif", ".tiff"}
	videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".flv", ".wmv"}
	textExtensions  = []string{".txt", ".md", ".json", ".yaml", ".yml", ".csv", ".log"}
)

// Filters returns the names of the built-in filters.
func Filters() []types.FileFilter {
	return []types.FileFilter{types.FilterAll, types.FilterImages, types.FilterVideos, types.FilterText}
}

// Resolve returns the extension set for a filter. A non-blank custom list
// takes precedence over the filter.
func Resolve(filter types.FileFilter, custom string) []string {
	if strings.TrimSpace(custom) != "" {
		return ParseCustom(custom)
	}

	switch filter {
	case types.FilterImages:
		return slices.Clone(imageExtensions)
	case types.FilterVideos:
		return slices.Clone(videoExtensions)
	case types.FilterText:
		return slices.Clone(textExtensions)
	default:
		// "all" and unknown filters match everything
		return nil
	}
}

// ParseCustom splits a comma separated extension list, adding the leading
// dot where it is missing. Order, duplicates and case are kept.
func ParseCustom(custom string) []string {
	parts := strings.Split(custom, ",")
	extensions := make([]string, 0, len(parts))
	for _, part := range parts {
		ext := strings.TrimSpace(part)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions = append(extensions, ext)
	}
	return extensions
}

// Matcher tests file names against an extension set.
type Matcher struct {
	extensions []string
}

// New creates a Matcher. An empty set matches every name.
func New(extensions []string) *Matcher {
	lowered := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		lowered = append(lowered, strings.ToLower(ext))
	}
	return &Matcher{extensions: lowered}
}

// Matches reports whether name ends with any extension, ignoring case.
func (m *Matcher) Matches(name string) bool {
	if len(m.extensions) == 0 {
		return true
	}

	lowerName := strings.ToLower(name)
	for _, ext := range m.extensions {
		if strings.HasSuffix(lowerName, ext) {
			return true
		}
	}
	return false
}
