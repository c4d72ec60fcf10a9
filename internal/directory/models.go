// Package directory is the compiled-in list of known establishments and their
// service fees.
package directory

import (
	"encoding/json"
	"errors"

	"github.com/gosimple/slug"
	"github.com/smallbiznis/feefeefee/internal/i18n"
)

// VATValue is the current VAT ratio in Georgia.
const VATValue = 0.18

// VATToken is the fee marker and query token meaning "use the VAT ratio".
const VATToken = "vat"

var ErrInvalidFee = errors.New("invalid_fee")

// Names holds an establishment's name per language. EN is never empty.
type Names struct {
	EN string `json:"en"`
	KA string `json:"ka"`
	RU string `json:"ru"`
}

// Get returns the name in lang, which may be empty.
func (n Names) Get(lang i18n.Lang) string {
	switch lang {
	case i18n.Georgian:
		return n.KA
	case i18n.Russian:
		return n.RU
	default:
		return n.EN
	}
}

// Fee is either a fixed ratio or the VAT marker.
type Fee struct {
	Ratio float64
	VAT   bool
}

// Ratio returns a fixed fee of r (0 <= r < 1).
func Ratio(r float64) Fee {
	return Fee{Ratio: r}
}

// VAT returns the VAT marker fee.
func VAT() Fee {
	return Fee{VAT: true}
}

// Resolve returns the effective ratio given the current VAT ratio.
func (f Fee) Resolve(vat float64) float64 {
	if f.VAT {
		return vat
	}
	return f.Ratio
}

// MarshalJSON encodes the marker as "vat" and ratios as numbers.
func (f Fee) MarshalJSON() ([]byte, error) {
	if f.VAT {
		return json.Marshal(VATToken)
	}
	return json.Marshal(f.Ratio)
}

// UnmarshalJSON accepts "vat" or a number in [0, 1).
func (f *Fee) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		if token != VATToken {
			return ErrInvalidFee
		}
		*f = VAT()
		return nil
	}

	var ratio float64
	if err := json.Unmarshal(data, &ratio); err != nil {
		return ErrInvalidFee
	}
	if ratio < 0 || ratio >= 1 {
		return ErrInvalidFee
	}
	*f = Ratio(ratio)
	return nil
}

// Entry is one known establishment.
type Entry struct {
	Names   Names    `json:"names"`
	Aliases []string `json:"aliases"`
	Fee     Fee      `json:"fee"`
}

// Slug is the URL-safe identity derived from the English name.
func (e Entry) Slug() string {
	return slug.Make(e.Names.EN)
}

// Title returns the name in lang, or the English name when it is missing.
func (e Entry) Title(lang i18n.Lang) string {
	if name := e.Names.Get(lang); name != "" {
		return name
	}
	return e.Names.EN
}
