package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsatrack/internal/extract"
)

func TestValidateFields_Success(t *testing.T) {
	receipt, err := extract.ValidateFields(extract.Fields{
		Provider:    "Acme Clinic",
		ServiceDate: "2024-03-01",
		Cost:        "$45.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Clinic", receipt.Provider)
	assert.Equal(t, "2024-03-01", receipt.ServiceDate)
	assert.Equal(t, 45.0, receipt.Cost)
}

func TestValidateFields_ServiceDateRejected(t *testing.T) {
	cases := []struct {
		name string
		date string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"sentinel", "Not Found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extract.ValidateFields(extract.Fields{
				Provider:    "Acme",
				ServiceDate: tc.date,
				Cost:        "10.00",
			})
			assert.ErrorIs(t, err, extract.ErrServiceDateMissing)
		})
	}
}

func TestValidateFields_CostNeverFails(t *testing.T) {
	cases := []struct {
		name string
		cost string
		want float64
	}{
		{"empty", "", 0},
		{"sentinel", "Not Found", 0},
		{"non-numeric", "about forty bucks", 0},
		{"plain", "45.00", 45.0},
		{"dollar sign", "$45.00", 45.0},
		{"thousands separators", "$1,234.56", 1234.56},
		{"euro", "€12,345.00", 12345.0},
		{"integer", "1234", 1234.0},
		{"whitespace padded", "  $99.95  ", 99.95},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			receipt, err := extract.ValidateFields(extract.Fields{
				Provider:    "Acme",
				ServiceDate: "2024-03-01",
				Cost:        tc.cost,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, receipt.Cost)
		})
	}
}

func TestValidateFields_AbsentProviderBecomesSentinel(t *testing.T) {
	receipt, err := extract.ValidateFields(extract.Fields{
		Provider:    "",
		ServiceDate: "2024-03-01",
		Cost:        "5.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Not Found", receipt.Provider)
}

func TestValidateFields_DateStoredVerbatim(t *testing.T) {
	// No date canonicalization: whatever string survives validation is stored.
	receipt, err := extract.ValidateFields(extract.Fields{
		Provider:    "Acme",
		ServiceDate: "March 1st, 2024",
		Cost:        "5.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "March 1st, 2024", receipt.ServiceDate)
}
