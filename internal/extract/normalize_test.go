package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsatrack/internal/extract"
)

func TestParseFields_PlainJSON(t *testing.T) {
	raw := `{"provider_name":"Acme Clinic","date_of_service":"2024-03-01","cost_of_service":"$45.00"}`

	fields, err := extract.ParseFields(raw)
	require.NoError(t, err)
	assert.Equal(t, "Acme Clinic", fields.Provider)
	assert.Equal(t, "2024-03-01", fields.ServiceDate)
	assert.Equal(t, "$45.00", fields.Cost)
}

func TestParseFields_SurroundingWhitespace(t *testing.T) {
	raw := "\n\n  {\"provider_name\":\"Acme\",\"date_of_service\":\"2024-03-01\",\"cost_of_service\":\"12.50\"}  \n"

	fields, err := extract.ParseFields(raw)
	require.NoError(t, err)
	assert.Equal(t, "Acme", fields.Provider)
}

func TestParseFields_CodeFences(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{
			"plain fences",
			"```\n{\"provider_name\":\"Acme\",\"date_of_service\":\"2024-03-01\",\"cost_of_service\":\"9.99\"}\n```",
		},
		{
			"json-tagged fences",
			"```json\n{\"provider_name\":\"Acme\",\"date_of_service\":\"2024-03-01\",\"cost_of_service\":\"9.99\"}\n```",
		},
		{
			"fences with surrounding whitespace",
			"  ```json\n{\"provider_name\":\"Acme\",\"date_of_service\":\"2024-03-01\",\"cost_of_service\":\"9.99\"}\n```  ",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields, err := extract.ParseFields(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, "Acme", fields.Provider)
			assert.Equal(t, "2024-03-01", fields.ServiceDate)
			assert.Equal(t, "9.99", fields.Cost)
		})
	}
}

func TestParseFields_NumericCostTolerated(t *testing.T) {
	raw := `{"provider_name":"Acme","date_of_service":"2024-03-01","cost_of_service":45.5}`

	fields, err := extract.ParseFields(raw)
	require.NoError(t, err)
	assert.Equal(t, "45.5", fields.Cost)
}

func TestParseFields_ProseFails(t *testing.T) {
	raw := "Sure! Here is the extracted data you asked for: provider is Acme Clinic."

	_, err := extract.ParseFields(raw)
	assert.Error(t, err)
}

func TestParseFields_MissingKeys(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		missing string
	}{
		{"no provider", `{"date_of_service":"2024-03-01","cost_of_service":"1.00"}`, "provider_name"},
		{"no date", `{"provider_name":"Acme","cost_of_service":"1.00"}`, "date_of_service"},
		{"no cost", `{"provider_name":"Acme","date_of_service":"2024-03-01"}`, "cost_of_service"},
		{"empty object", `{}`, "provider_name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extract.ParseFields(tc.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.missing)
		})
	}
}

func TestParseFields_SentinelValuesPassThrough(t *testing.T) {
	raw := `{"provider_name":"Not Found","date_of_service":"Not Found","cost_of_service":"Not Found"}`

	fields, err := extract.ParseFields(raw)
	require.NoError(t, err)
	assert.Equal(t, "Not Found", fields.Provider)
	assert.Equal(t, "Not Found", fields.ServiceDate)
	assert.Equal(t, "Not Found", fields.Cost)
}
