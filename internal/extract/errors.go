package extract

import (
	"errors"
	"fmt"
)

// FailureKind classifies a terminal pipeline failure.
type FailureKind string

const (
	FailureConfig      FailureKind = "configuration"
	FailureInput       FailureKind = "input"
	FailureService     FailureKind = "service"
	FailureParse       FailureKind = "parse"
	FailureValidation  FailureKind = "validation"
	FailurePersistence FailureKind = "persistence"
	FailureUnhandled   FailureKind = "unhandled"
)

// PipelineError is a terminal failure of one pipeline run. It carries the
// diagnostics accumulated up to the failing stage, so a failure after the
// model call still exposes the prompt sent and the raw text received.
type PipelineError struct {
	Kind        FailureKind
	Stage       Stage
	Message     string
	Diagnostics Diagnostics
	Err         error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failure at %s: %s: %v", e.Kind, e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failure at %s: %s", e.Kind, e.Stage, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// AsPipelineError unwraps err into a *PipelineError if it is one.
func AsPipelineError(err error) (*PipelineError, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
