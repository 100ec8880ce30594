package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-hugoprep/pkg/interfaces"
)

const (
	rootModule     = "hugoprep"
	rewriteModule  = "hugoprep.rewrite"
	pipelineModule = "hugoprep.pipeline"
	commandsModule = "hugoprep.commands"
)

const (
	fieldInputPath  = "input_path"
	fieldOutputPath = "output_path"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RewriteLogger returns the logger namespace reserved for the shortcode rewriter.
func RewriteLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, rewriteModule)
}

// PipelineLogger returns the logger namespace reserved for the file driver.
func PipelineLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pipelineModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithFileContext enriches the provided logger with the input/output paths of
// the file being processed. Empty values are ignored.
func WithFileContext(logger interfaces.Logger, input, output string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		fields[fieldInputPath] = trimmed
	}
	if trimmed := strings.TrimSpace(output); trimmed != "" {
		fields[fieldOutputPath] = trimmed
	}
	return WithFields(logger, fields)
}

// WithFields attaches structured fields when the logger supports the
// optional FieldsLogger extension; other implementations are returned
// unchanged. Nil loggers and empty field maps short-circuit.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return fieldsLogger.WithFields(copied)
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
