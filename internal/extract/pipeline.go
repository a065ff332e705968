package extract

import (
	"context"
	"fmt"
	"log"

	"hsatrack/internal/domain"
	"hsatrack/internal/port"
)

// Stage identifies how far a pipeline run progressed. Each stage is visited at
// most once per run; there are no retries or loops.
type Stage string

const (
	StageEncoding    Stage = "encoding"
	StagePrompting   Stage = "prompting"
	StageCalling     Stage = "calling"
	StageNormalizing Stage = "normalizing"
	StageValidating  Stage = "validating"
	StagePersisting  Stage = "persisting"
)

// Diagnostics is the debug context retained alongside every outcome, success
// or failure: the exact prompt sent and the exact raw text received from the
// model.
type Diagnostics struct {
	Prompt       string `json:"prompt"`
	RawModelText string `json:"raw_model_text"`
}

// Result is a successful pipeline outcome: the persisted receipt, the fields
// as extracted, and the full diagnostics. Callers surface the diagnostics only
// on their own policy; the pipeline always attaches them.
type Result struct {
	Receipt     *domain.Receipt
	Fields      Fields
	Diagnostics Diagnostics
}

// Pipeline turns an uploaded PDF into a validated, persisted receipt or a
// classified *PipelineError. It is stateless across runs; all per-run state is
// local to Run, so concurrent runs need no locking.
type Pipeline struct {
	gateway  port.ModelGateway
	receipts port.ReceiptRepository
}

// NewPipeline creates an extraction pipeline over the given model gateway and
// receipt sink.
func NewPipeline(gateway port.ModelGateway, receipts port.ReceiptRepository) *Pipeline {
	return &Pipeline{gateway: gateway, receipts: receipts}
}

// Run executes the extraction pipeline on one document. Every failure is
// converted into a *PipelineError carrying whatever diagnostics existed at the
// point of failure; no failure is retried or silently swallowed.
func (p *Pipeline) Run(ctx context.Context, document []byte) (*Result, error) {
	var diag Diagnostics

	// Fail fast on missing credentials before any stage executes.
	if !p.gateway.Configured() {
		return nil, &PipelineError{
			Kind:        FailureConfig,
			Stage:       StageEncoding,
			Message:     "model service credential is not configured",
			Diagnostics: diag,
			Err:         domain.ErrModelNotConfigured,
		}
	}

	// Encoding
	if len(document) == 0 {
		return nil, &PipelineError{
			Kind:        FailureInput,
			Stage:       StageEncoding,
			Message:     "document is empty",
			Diagnostics: diag,
			Err:         domain.ErrEmptyDocument,
		}
	}
	encoded := EncodeDocument(document)

	// Prompting
	prompt := BuildReceiptPrompt()
	diag.Prompt = prompt

	// Calling
	resp, err := p.gateway.Generate(ctx, prompt, port.InlineDocument{
		Data:     encoded,
		MIMEType: domain.AcceptedContentType,
	})
	if err != nil {
		return nil, &PipelineError{
			Kind:        FailureUnhandled,
			Stage:       StageCalling,
			Message:     "model service call failed",
			Diagnostics: diag,
			Err:         err,
		}
	}
	diag.RawModelText = resp.RawText
	if !resp.StatusOK {
		return nil, &PipelineError{
			Kind:        FailureService,
			Stage:       StageCalling,
			Message:     fmt.Sprintf("model service error (status %d): %s", resp.HTTPStatus, resp.ErrorDetail),
			Diagnostics: diag,
		}
	}

	// Normalizing
	fields, err := ParseFields(resp.RawText)
	if err != nil {
		return nil, &PipelineError{
			Kind:        FailureParse,
			Stage:       StageNormalizing,
			Message:     "model output could not be parsed into the expected fields",
			Diagnostics: diag,
			Err:         err,
		}
	}

	// Validating
	receipt, err := ValidateFields(fields)
	if err != nil {
		return nil, &PipelineError{
			Kind:        FailureValidation,
			Stage:       StageValidating,
			Message:     err.Error(),
			Diagnostics: diag,
			Err:         err,
		}
	}

	// Persisting. A validated receipt that fails to persist is never reported
	// as a success, even though the model call already succeeded.
	if err := p.receipts.Create(ctx, receipt); err != nil {
		return nil, &PipelineError{
			Kind:        FailurePersistence,
			Stage:       StagePersisting,
			Message:     "storing receipt failed",
			Diagnostics: diag,
			Err:         err,
		}
	}

	log.Printf("pipeline: stored receipt %s (provider=%q date=%s cost=%.2f)",
		receipt.ID, receipt.Provider, receipt.ServiceDate, receipt.Cost)

	return &Result{Receipt: receipt, Fields: fields, Diagnostics: diag}, nil
}
