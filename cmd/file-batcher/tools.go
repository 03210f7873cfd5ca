package main

import (
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/file-batcher/internal/extfilter"
	"github.com/taigrr/file-batcher/internal/types"
)

type (
	// BatchInput contains parameters for batching the files of a folder.
	BatchInput struct {
		FolderPath    string `json:"folder_path" jsonschema:"Folder to list. Absolute, or relative to the input directory; empty means the input directory itself"`
		FileFilter    string `json:"file_filter" jsonschema:"File category filter: all, images, videos or text"`
		SortBy        string `json:"sort_by" jsonschema:"Sort order: name_asc, name_desc, date_asc, date_desc, size_asc or size_desc"`
		FileExtension string `json:"file_extension,omitempty" jsonschema:"Comma-separated extensions (e.g. .png,.jpg). Leave empty to use file_filter"`
	}

	// BatchOutput contains the rendered file lists.
	BatchOutput struct {
		FileList     string `json:"file_list"`
		FilePathList string `json:"file_path_list"`
		Count        int    `json:"count"`
		Directory    string `json:"directory"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "batch_files",
		Description: batchDescription(),
	}, handleBatch)
}

func batchDescription() string {
	filters := make([]string, 0, len(extfilter.Filters()))
	for _, f := range extfilter.Filters() {
		filters = append(filters, string(f))
	}
	keys := make([]string, 0, len(types.SortKeys()))
	for _, k := range types.SortKeys() {
		keys = append(keys, string(k))
	}
	return fmt.Sprintf("List the files of a folder (not recursive), filter them by category (%s) or custom extensions, "+
		"and sort them (%s). Returns a numbered file list (\"0: name\" per line) and the matching absolute paths, one per line. "+
		"Returns file_list \"%s\" when nothing matches.",
		strings.Join(filters, ", "), strings.Join(keys, ", "), types.NoFilesFound)
}
