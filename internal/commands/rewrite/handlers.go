// Package rewritecmd exposes the rewrite pipeline operations as go-command
// handlers so callers get validation, logging, and error categorisation for
// free.
package rewritecmd

import (
	"context"
	"strings"

	"github.com/goliatone/go-hugoprep/internal/commands"
	"github.com/goliatone/go-hugoprep/internal/logging"
	"github.com/goliatone/go-hugoprep/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	processFileOperation      = "rewrite.process_file"
	processDirectoryOperation = "rewrite.process_directory"
)

var (
	_ command.Commander[ProcessFileCommand]      = (*ProcessFileHandler)(nil)
	_ command.Commander[ProcessDirectoryCommand] = (*ProcessDirectoryHandler)(nil)
)

// ProcessFileHandler executes single-file rewrites through the shared handler foundation.
type ProcessFileHandler struct {
	inner *commands.Handler[ProcessFileCommand]
}

// NewProcessFileHandler creates a handler bound to the supplied processor.
func NewProcessFileHandler(processor interfaces.Processor, logger interfaces.Logger, opts ...commands.HandlerOption[ProcessFileCommand]) *ProcessFileHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ProcessFileCommand) error {
		output := strings.TrimSpace(msg.Output)
		if output == "" {
			output = msg.Input
		}

		report, err := processor.ProcessFile(ctx, msg.Input, output)
		if err != nil {
			return err
		}
		if report != nil {
			logging.WithFields(baseLogger, map[string]any{
				"figures_converted": report.Result.FiguresConverted,
				"figures_removed":   report.Result.FiguresRemoved,
				"paths_rewritten":   report.Result.PathsRewritten,
				"title":             report.Title,
			}).Info("rewrite.command.process_file.completed")
		}
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[ProcessFileCommand]{
		commands.WithLogger[ProcessFileCommand](baseLogger),
		commands.WithOperation[ProcessFileCommand](processFileOperation),
	}, opts...)

	return &ProcessFileHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ProcessFileHandler) Execute(ctx context.Context, msg ProcessFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ProcessDirectoryHandler executes batch rewrites through the shared handler foundation.
type ProcessDirectoryHandler struct {
	inner *commands.Handler[ProcessDirectoryCommand]
}

// NewProcessDirectoryHandler creates a handler bound to the supplied processor.
// Batch runs disable the execution timeout; directory size is unbounded.
func NewProcessDirectoryHandler(processor interfaces.Processor, logger interfaces.Logger, opts ...commands.HandlerOption[ProcessDirectoryCommand]) *ProcessDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ProcessDirectoryCommand) error {
		batch, err := processor.ProcessDirectory(ctx, msg.InputDir, msg.OutputDir)
		if err != nil {
			return err
		}
		if batch != nil {
			logging.WithFields(baseLogger, map[string]any{
				"processed_count": batch.Processed,
				"input_dir":       msg.InputDir,
				"output_dir":      msg.OutputDir,
			}).Info("rewrite.command.process_directory.completed")
		}
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[ProcessDirectoryCommand]{
		commands.WithLogger[ProcessDirectoryCommand](baseLogger),
		commands.WithOperation[ProcessDirectoryCommand](processDirectoryOperation),
		commands.WithTimeout[ProcessDirectoryCommand](0),
	}, opts...)

	return &ProcessDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ProcessDirectoryHandler) Execute(ctx context.Context, msg ProcessDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
