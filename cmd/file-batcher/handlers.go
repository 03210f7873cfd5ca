package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/file-batcher/internal/types"
)

func handleBatch(ctx context.Context, req *mcp.CallToolRequest, input BatchInput) (*mcp.CallToolResult, BatchOutput, error) {
	result := batchService.Batch(ctx, types.BatchParams{
		FolderPath:    input.FolderPath,
		FileFilter:    types.FileFilter(strings.TrimSpace(input.FileFilter)),
		SortBy:        types.SortKey(strings.TrimSpace(input.SortBy)),
		FileExtension: input.FileExtension,
	})

	return nil, BatchOutput{
		FileList:     result.FileList,
		FilePathList: result.FilePathList,
		Count:        result.Count,
		Directory:    result.Dir,
	}, nil
}
