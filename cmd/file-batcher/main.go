// Package main implements the file batcher MCP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/file-batcher/internal/batcher"
	"github.com/taigrr/file-batcher/internal/config"
	"github.com/taigrr/file-batcher/internal/filesystem"
	"github.com/taigrr/file-batcher/internal/sorter"
)

var (
	configPath string
	inputDir   string
	logLevel   string

	logger       *zap.Logger
	batchService *batcher.Service
)

func main() {
	cmd := &cobra.Command{
		Use:   "file-batcher",
		Short: "MCP server that lists, filters and sorts files in a directory",
		Long: `file-batcher is a Model Context Protocol (MCP) server exposing a single
batch_files tool. The tool lists the files of one directory, filters
them by category or extension, sorts them and returns a numbered name
list together with the matching absolute paths.

Empty and relative folder paths resolve against the input directory.`,
		Example:           `file-batcher --input-dir ~/renders`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setup,
		RunE:              runServer,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&inputDir, "input-dir", "", "Directory that empty and relative folder paths resolve against (default: current directory)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default: info)")

	cmd.AddCommand(newBatchCommand())

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = config.ExpandHome(inputDir)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	// Initialize services
	fileSystem := filesystem.New(cfg.InputDir, logger.Named("filesystem"))
	batchService = batcher.New(fileSystem, sorter.New(logger.Named("sorter")), logger.Named("batcher"))

	logger.Debug("configured", zap.String("input_dir", fileSystem.InputDir()), zap.String("log_level", cfg.LogLevel))
	return nil
}

// newLogger builds a logger writing to stderr, which keeps stdout free for
// the MCP stream.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

func runServer(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "file-batcher",
		Version: version,
	}, nil)

	registerTools(server)

	logger.Info("serving MCP over stdio", zap.String("version", version))
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
