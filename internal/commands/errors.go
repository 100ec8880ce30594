package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped handler errors so scripts driving batch
// rewrites can classify failures without parsing messages.
const (
	codeValidationFailed = "HUGOPREP_VALIDATION_FAILED"
	codeRunCanceled      = "HUGOPREP_RUN_CANCELED"
	codeRunTimeout       = "HUGOPREP_RUN_TIMEOUT"
	codeRunFailed        = "HUGOPREP_RUN_FAILED"
)

// wrapValidationError tags message validation failures. Errors wrapped closer
// to the failure keep their original category.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "rewrite message rejected").
		WithTextCode(codeValidationFailed)
}

// wrapRunError tags run failures. A sequential rewrite run can end early in
// exactly two context-driven ways: the user interrupted it, or the handler
// timeout elapsed; everything else is an ordinary execution failure.
func wrapRunError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "rewrite run canceled").
			WithTextCode(codeRunCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "rewrite run timed out").
			WithTextCode(codeRunTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "rewrite run failed").
			WithTextCode(codeRunFailed)
	}
}
