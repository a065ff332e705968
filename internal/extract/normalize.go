package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Fields holds the three values the model is asked to extract, as raw strings.
// Any field may carry the "Not Found" sentinel.
type Fields struct {
	Provider    string
	ServiceDate string
	Cost        string
}

// flexString unmarshals either a JSON string or a JSON number into a string,
// since models occasionally emit the cost as a bare number despite being
// asked for strings.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", strconv.Quote(string(data)))
	}
	*f = flexString(n.String())
	return nil
}

// ParseFields normalizes the model's raw text and parses it strictly as a
// single JSON object with the three required keys. Missing keys are a parse
// failure, not a missing-value case. Prose around the JSON is not scraped; if
// the model wraps its answer in explanation, parsing fails as designed.
func ParseFields(raw string) (Fields, error) {
	cleaned := stripCodeFences(raw)

	var payload struct {
		Provider    *flexString `json:"provider_name"`
		ServiceDate *flexString `json:"date_of_service"`
		Cost        *flexString `json:"cost_of_service"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return Fields{}, fmt.Errorf("parsing model output as JSON: %w", err)
	}

	var missing []string
	if payload.Provider == nil {
		missing = append(missing, "provider_name")
	}
	if payload.ServiceDate == nil {
		missing = append(missing, "date_of_service")
	}
	if payload.Cost == nil {
		missing = append(missing, "cost_of_service")
	}
	if len(missing) > 0 {
		return Fields{}, fmt.Errorf("model output missing required keys: %s", strings.Join(missing, ", "))
	}

	return Fields{
		Provider:    string(*payload.Provider),
		ServiceDate: string(*payload.ServiceDate),
		Cost:        string(*payload.Cost),
	}, nil
}

// stripCodeFences removes a surrounding markdown code fence if present. The
// model is asked not to emit one, but it must be tolerated if it does.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
