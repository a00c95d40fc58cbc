package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for rendering.
var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrEmptyPayload      = errors.New("renderer produced an empty payload")
	ErrInvalidPayload    = errors.New("renderer produced an invalid payload")
	ErrCanvas            = errors.New("canvas error")
	ErrTemplate          = errors.New("template error")
)

// Stage names the step of the pipeline an error came from.
type Stage string

// Pipeline stages.
const (
	StageFormat   Stage = "format"
	StageRender   Stage = "render"
	StageValidate Stage = "validate"
	StageFallback Stage = "fallback"
)

// Error describes a failed rendering attempt.
type Error struct {
	Stage  Stage
	Format Format
	Cause  error
}

func (e *Error) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Format, e.Stage, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Wrap returns err as an *Error for stage and format. A nil err stays nil and
// an existing *Error is returned unchanged.
func Wrap(stage Stage, format Format, err error) error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return err
	}
	return &Error{Stage: stage, Format: format, Cause: err}
}
