package directory

import (
	"strings"

	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/smallbiznis/feefeefee/internal/price"
)

// Suggestible feeds an autocomplete widget: it maps query text to ordered
// items and renders each item as display data.
type Suggestible[T any] interface {
	Suggest(query string) []T
	Render(item T, lang i18n.Lang) Option
}

// Alternate is an entry name in a language other than the current one.
type Alternate struct {
	Lang  i18n.Lang `json:"lang"`
	Value string    `json:"value"`
}

// Option is the structured rendering of a suggestion.
type Option struct {
	Slug       string      `json:"slug"`
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Alternates []Alternate `json:"alternates"`
	Fee        string      `json:"fee"`
}

// Suggester implements Suggestible over a fixed entry list.
type Suggester struct {
	entries []Entry
	vat     float64
}

var _ Suggestible[Entry] = (*Suggester)(nil)

func NewSuggester(entries []Entry, vat float64) *Suggester {
	return &Suggester{entries: entries, vat: vat}
}

func (s *Suggester) Suggest(query string) []Entry {
	return Search(query, s.entries)
}

func (s *Suggester) Render(item Entry, lang i18n.Lang) Option {
	title := item.Title(lang)

	alternates := make([]Alternate, 0, 2)
	for _, other := range i18n.Others(lang) {
		value := item.Names.Get(other.Code)
		if value == "" || value == title {
			continue
		}
		alternates = append(alternates, Alternate{Lang: other.Code, Value: value})
	}

	return Option{
		Slug:       item.Slug(),
		Name:       item.Names.EN,
		Title:      title,
		Alternates: alternates,
		Fee:        s.FeeLabel(item, lang),
	}
}

// FeeLabel renders the fee of item, e.g. "15%". VAT entries whose English name
// does not already say VAT are labelled with the localized VAT template.
func (s *Suggester) FeeLabel(item Entry, lang i18n.Lang) string {
	if item.Fee.VAT {
		label := price.PercentExact(s.vat) + "%"
		if strings.Contains(item.Names.EN, "VAT") {
			return label
		}
		return i18n.T(lang, i18n.KeySearchVat, label)
	}
	return price.Percent(item.Fee.Ratio) + "%"
}
