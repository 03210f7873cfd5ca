// Package types defines all data structures used across the file batcher.
package types

type (
	// FileFilter names a built-in extension category.
	FileFilter string

	// SortKey selects the field and direction used to order files.
	SortKey string
)

const (
	FilterAll    FileFilter = "all"
	FilterImages FileFilter = "images"
	FilterVideos FileFilter = "videos"
	FilterText   FileFilter = "text"
)

const (
	SortNameAsc  SortKey = "name_asc"
	SortNameDesc SortKey = "name_desc"
	SortDateAsc  SortKey = "date_asc"
	SortDateDesc SortKey = "date_desc"
	SortSizeAsc  SortKey = "size_asc"
	SortSizeDesc SortKey = "size_desc"
)

// NoFilesFound is the file list reported when nothing matched.
const NoFilesFound = "No files found"

// SortKeys returns every supported sort key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortNameAsc, SortNameDesc, SortDateAsc, SortDateDesc, SortSizeAsc, SortSizeDesc}
}

type (
	// BatchParams contains the inputs of a batch operation.
	BatchParams struct {
		FolderPath    string     `json:"folder_path"`
		FileFilter    FileFilter `json:"file_filter"`
		SortBy        SortKey    `json:"sort_by"`
		FileExtension string     `json:"file_extension,omitempty"` // comma separated, overrides FileFilter
	}

	// BatchResult contains the rendered output of a batch operation.
	BatchResult struct {
		FileList     string `json:"file_list"`
		FilePathList string `json:"file_path_list"`
		Count        int    `json:"count"`
		Dir          string `json:"directory"`
	}
)

// EmptyBatchResult returns the result reported when no files matched in dir.
func EmptyBatchResult(dir string) BatchResult {
	return BatchResult{
		FileList:     NoFilesFound,
		FilePathList: "",
		Dir:          dir,
	}
}
