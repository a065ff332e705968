package port

import "context"

// InlineDocument is a transport-safe document attachment for a model request:
// base64-encoded bytes tagged with their media type.
type InlineDocument struct {
	Data     string
	MIMEType string
}

// ModelResponse is the unprocessed answer from the model service. When
// StatusOK is false, ErrorDetail carries the service's own error message
// (extracted from a structured error body when possible, otherwise the raw
// body) and RawText is empty.
type ModelResponse struct {
	StatusOK    bool
	HTTPStatus  int
	RawText     string
	ErrorDetail string
}

// ModelGateway abstracts the external text-completion service. Generate
// performs a single synchronous call with no retry; transport-level failures
// are returned as errors, service-level failures as a response with
// StatusOK=false.
type ModelGateway interface {
	Generate(ctx context.Context, prompt string, doc InlineDocument) (*ModelResponse, error)
	Configured() bool
}
