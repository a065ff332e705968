package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hsatrack/internal/config"
	"hsatrack/internal/port"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client implements port.ModelGateway against Google's Gemini API. It performs
// a single synchronous generateContent call per request with no retry.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini-backed model gateway.
func NewClient(cfg *config.GeminiConfig) *Client {
	return newClient(cfg, cfg.Endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GeminiConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the gateway has a credential to call the API with.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Generate sends the prompt and inline document to the Gemini API and returns
// the raw model text. Non-200 responses come back as a ModelResponse with
// StatusOK=false; the textual content of a successful response is never
// inspected here beyond unwrapping the API envelope.
func (c *Client) Generate(ctx context.Context, prompt string, doc port.InlineDocument) (*port.ModelResponse, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]interface{}{
							"mime_type": doc.MIMEType,
							"data":      doc.Data,
						},
					},
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"maxOutputTokens":  1024,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &port.ModelResponse{
			StatusOK:    false,
			HTTPStatus:  resp.StatusCode,
			ErrorDetail: errorDetail(respBody),
		}, nil
	}

	text, ok := candidateText(respBody)
	if !ok {
		return &port.ModelResponse{
			StatusOK:    false,
			HTTPStatus:  resp.StatusCode,
			ErrorDetail: "empty response from model: no candidates",
		}, nil
	}

	return &port.ModelResponse{
		StatusOK:   true,
		HTTPStatus: resp.StatusCode,
		RawText:    text,
	}, nil
}

// geminiResponse models the Gemini API response envelope.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func candidateText(body []byte) (string, bool) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", false
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	return resp.Candidates[0].Content.Parts[0].Text, true
}

// errorDetail extracts the human-readable message from a structured Gemini
// error body, falling back to the raw body when it is not structured.
func errorDetail(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return strings.TrimSpace(string(body))
}
