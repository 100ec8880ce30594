// Package commands provides the shared handler foundation for hugoprep
// command messages: validation, context management, logging, and error
// categorisation around a wrapped execution function.
package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-hugoprep/internal/logging"
	"github.com/goliatone/go-hugoprep/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// A single-file rewrite is read, regex substitution, write; ten seconds only
// trips on pathological I/O. Batch handlers disable the timeout entirely.
const defaultRunTimeout = 10 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler wraps a rewrite operation so individual handlers only carry their
// domain logic.
type Handler[T command.Message] struct {
	exec      command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
}

// NewHandler creates a handler that satisfies go-command's Commander interface.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultRunTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute conforms to command.Commander[T].Execute. Messages are validated
// before any file is touched; context and execution failures come back
// wrapped with hugoprep categories and text codes.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return wrapRunError(err)
	}

	fields := map[string]any{
		"command": command.GetMessageType(msg),
	}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	logger := logging.WithFields(h.logger, fields)
	logger.Debug("command.run.start")

	if err := h.exec(ctx, msg); err != nil {
		logger.Error("command.run.failed", "error", err)
		return wrapRunError(err)
	}

	if err := ctx.Err(); err != nil {
		logger.Error("command.run.interrupted", "error", err)
		return wrapRunError(err)
	}

	logger.Info("command.run.success")
	return nil
}

// WithTimeout overrides the default run timeout. Zero or negative disables
// the timeout; batch runs over large directories rely on that.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithOperation sets a human-friendly operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

func (h *Handler[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}
