package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/file-batcher/internal/types"
)

func newBatchCommand() *cobra.Command {
	var params types.BatchParams
	var filter, sortBy string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run batch_files once and print the result",
		Long: `Run the batch_files operation once. The numbered file list is printed
first, followed by a blank line and the absolute file paths.`,
		Example: `file-batcher batch --folder renders --filter images --sort date_desc`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = logger.Sync() }()

			params.FileFilter = types.FileFilter(filter)
			params.SortBy = types.SortKey(sortBy)
			result := batchService.Batch(cmd.Context(), params)

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, result.FileList); err != nil {
				return err
			}
			if result.FilePathList == "" {
				return nil
			}
			_, err := fmt.Fprintf(out, "\n%s\n", result.FilePathList)
			return err
		},
	}

	cmd.Flags().StringVar(&params.FolderPath, "folder", "", "Folder to list, absolute or relative to the input directory")
	cmd.Flags().StringVar(&filter, "filter", string(types.FilterAll), "File filter: all, images, videos or text")
	cmd.Flags().StringVar(&sortBy, "sort", string(types.SortNameAsc), "Sort key: name_asc, name_desc, date_asc, date_desc, size_asc or size_desc")
	cmd.Flags().StringVar(&params.FileExtension, "ext", "", "Comma separated extensions, overrides --filter (e.g. .png,.jpg)")

	return cmd
}
