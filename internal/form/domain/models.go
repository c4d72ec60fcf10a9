package domain

import (
	"math"
	"strings"

	"github.com/smallbiznis/feefeefee/internal/fee"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/smallbiznis/feefeefee/internal/price"
)

// LineItem is one menu price row. ID is stable for the item's lifetime.
type LineItem struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// State is the committed form owned by the controller.
type State struct {
	Items   []LineItem `json:"items"`
	Lang    i18n.Lang  `json:"lang"`
	Query   string     `json:"query"`
	Display string     `json:"display"`
}

// Totals is the result of Recompute.
type Totals struct {
	Nominal float64            `json:"nominal"`
	Actual  float64            `json:"actual"`
	PerItem map[string]float64 `json:"per_item"`
	Equal   bool               `json:"equal"`
}

// MaxAmount bounds the magnitude of a menu price. Larger values would let the
// sums overflow to infinity, which cannot be encoded as JSON.
const MaxAmount = 1e15

// SeparatorCount returns how many '.' and ',' characters raw holds.
func SeparatorCount(raw string) int {
	return strings.Count(raw, ".") + strings.Count(raw, ",")
}

// Normalize applies the edit gate. Text with at most one separator has ',' turned
// into '.'; the result is accepted only if it parses as a number no larger than
// MaxAmount in magnitude.
func Normalize(raw string) (string, bool) {
	value := raw
	if SeparatorCount(raw) <= 1 {
		value = strings.ReplaceAll(raw, ",", ".")
	}
	v, ok := price.ParseNumber(value)
	if !ok || math.Abs(v) > MaxAmount {
		return raw, false
	}
	return value, true
}

// NumericValue parses a committed raw value. Values with two or more separators,
// values that do not parse and values beyond MaxAmount count as zero.
func NumericValue(raw string) float64 {
	if SeparatorCount(raw) > 1 {
		return 0
	}
	v, ok := price.ParseNumber(raw)
	if !ok || math.Abs(v) > MaxAmount {
		return 0
	}
	return v
}

// Recompute derives per-item real prices and the form sums. Each item is rounded
// to two decimals before it is added to the sums. A result that overflows under
// an extreme fee ratio is reported as zero.
func Recompute(items []LineItem, ratio float64) Totals {
	totals := Totals{PerItem: make(map[string]float64, len(items))}
	for _, item := range items {
		value := NumericValue(item.Value)
		totals.PerItem[item.ID] = finite(value + value*ratio)

		rounded := price.Round2(value)
		totals.Nominal += rounded
		totals.Actual += rounded + rounded*ratio
	}
	totals.Nominal = finite(totals.Nominal)
	totals.Actual = finite(totals.Actual)
	totals.Equal = totals.Nominal == totals.Actual
	return totals
}

// RecomputeFee is Recompute with the effective ratio of f.
func RecomputeFee(items []LineItem, f fee.Fee) Totals {
	return Recompute(items, f.Effective())
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
