// Package fee resolves the effective service fee from search text or a
// confirmed directory entry.
package fee

import (
	"errors"
	"strings"

	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/smallbiznis/feefeefee/internal/price"
)

var ErrInvalidPlace = errors.New("invalid_place")

// InvalidPlaceError carries the submitted text that matched neither a number
// nor a known place.
type InvalidPlaceError struct {
	Text string
}

func (e *InvalidPlaceError) Error() string {
	return "invalid place or number: " + e.Text
}

func (e *InvalidPlaceError) Unwrap() error {
	return ErrInvalidPlace
}

// Fee is an effective fee ratio. Set is false when the query was neither a
// number nor the VAT token; such a fee counts as zero and shows no badge.
type Fee struct {
	Ratio float64 `json:"ratio"`
	Set   bool    `json:"set"`
}

// Effective returns the ratio used for arithmetic.
func (f Fee) Effective() float64 {
	if !f.Set {
		return 0
	}
	return f.Ratio
}

// Badge renders "+N%" for a set, non-zero fee and "" otherwise.
func (f Fee) Badge() string {
	if !f.Set || f.Ratio == 0 {
		return ""
	}
	return "+" + price.Percent(f.Ratio) + "%"
}

// Submission is the outcome of confirming an entry or submitting free text.
// Query is the text the fee is derived from; Display is what the search box
// shows afterwards.
type Submission struct {
	Query   string           `json:"query"`
	Display string           `json:"display"`
	Entry   *directory.Entry `json:"entry,omitempty"`
	Fee     Fee              `json:"fee"`
}

// Resolver maps queries and directory entries to fees.
type Resolver struct {
	vat     float64
	entries []directory.Entry
}

func NewResolver(vat float64, entries []directory.Entry) *Resolver {
	return &Resolver{vat: vat, entries: entries}
}

// ResolveQuery returns the VAT ratio for "vat" in any case, n/100 for numeric
// text and an unset fee otherwise. Empty text is the number zero.
func (r *Resolver) ResolveQuery(query string) Fee {
	if strings.ToLower(query) == directory.VATToken {
		return Fee{Ratio: r.vat, Set: true}
	}
	n, ok := price.ParseNumber(query)
	if !ok {
		return Fee{}
	}
	return Fee{Ratio: n / 100, Set: true}
}

// ResolveSelection returns the fee of a directory entry.
func (r *Resolver) ResolveSelection(entry directory.Entry) Fee {
	return Fee{Ratio: entry.Fee.Resolve(r.vat), Set: true}
}

// Confirm selects entry. The search box shows its English name.
func (r *Resolver) Confirm(entry directory.Entry) Submission {
	query := directory.VATToken
	if !entry.Fee.VAT {
		query = price.PercentExact(entry.Fee.Ratio)
	}
	selected := entry
	return Submission{
		Query:   query,
		Display: entry.Names.EN,
		Entry:   &selected,
		Fee:     r.ResolveSelection(entry),
	}
}

// Submit handles text submitted without confirming a suggestion. Numeric text
// is a percentage; otherwise the text must equal an English name exactly.
func (r *Resolver) Submit(text string) (Submission, error) {
	if _, ok := price.ParseNumber(text); ok {
		return Submission{
			Query:   text,
			Display: text,
			Fee:     r.ResolveQuery(text),
		}, nil
	}

	entry, ok := directory.FindByName(text, r.entries)
	if !ok {
		return Submission{}, &InvalidPlaceError{Text: text}
	}
	return r.Confirm(entry), nil
}
