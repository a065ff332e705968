package extract

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"hsatrack/internal/domain"
)

// ErrServiceDateMissing indicates the model could not determine the service
// date. A receipt cannot be filed without a date, so this fails the pipeline.
var ErrServiceDateMissing = errors.New("service date is missing or could not be determined")

// currencyStripper removes currency symbols and thousands separators before
// numeric parsing.
var currencyStripper = strings.NewReplacer("$", "", "€", "", "£", "", "₹", "", ",", "", " ", "")

// ValidateFields applies the per-field business rules to the parsed fields and
// produces a receipt ready for persistence (ID and CreatedAt unset).
//
// The asymmetry is deliberate: a missing or sentinel service date rejects the
// whole record, while an unparseable cost degrades to zero. No date format
// canonicalization is performed; the stored date is whatever string survived.
func ValidateFields(f Fields) (*domain.Receipt, error) {
	provider := strings.TrimSpace(f.Provider)
	if provider == "" {
		provider = domain.Sentinel
	}

	date := strings.TrimSpace(f.ServiceDate)
	if date == "" || date == domain.Sentinel {
		return nil, ErrServiceDateMissing
	}

	return &domain.Receipt{
		Provider:    provider,
		ServiceDate: date,
		Cost:        ParseCost(f.Cost),
	}, nil
}

// ParseCost coerces a cost string like "$1,234.56" to its numeric value.
// Absent, sentinel, or non-numeric input coerces to zero, never to an error.
func ParseCost(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == domain.Sentinel {
		return 0
	}
	d, err := decimal.NewFromString(currencyStripper.Replace(s))
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
