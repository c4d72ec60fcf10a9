// Package price formats and parses amounts for display.
//
// Amounts are rounded to two fractional digits with decimal.Round, which rounds
// half away from zero on the shortest decimal form of the float (1.005 -> 1.01,
// -1.005 -> -1.01, 2.675 -> 2.68).
package price

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/feefeefee/internal/i18n"
)

// CurrencySymbol is the Georgian lari sign used by the price template.
const CurrencySymbol = "₾"

var ErrInvalidAmount = errors.New("invalid_amount")

// Round2 rounds v to two fractional digits. Non-finite values round to 0.
func Round2(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Fixed renders v with exactly two fractional digits and a period separator.
func Fixed(v float64) string {
	if !isFinite(v) {
		v = 0
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Separator returns the decimal separator used in lang.
func Separator(lang i18n.Lang) string {
	switch lang {
	case i18n.Georgian, i18n.Russian:
		return ","
	default:
		return "."
	}
}

// Format renders amount with two fractional digits in lang, optionally wrapped in
// the localized currency template.
func Format(amount float64, lang i18n.Lang, withCurrency bool) string {
	return render(localize(Fixed(amount), lang), lang, withCurrency)
}

// Readable is Format with trailing fractional zeros and a bare separator removed.
func Readable(amount float64, lang i18n.Lang, withCurrency bool) string {
	return render(trimZeros(localize(Fixed(amount), lang), Separator(lang)), lang, withCurrency)
}

// Parse reverses Format and Readable for lang.
func Parse(text string, lang i18n.Lang) (float64, error) {
	value := strings.ReplaceAll(text, CurrencySymbol, "")
	value = strings.TrimSpace(value)
	if sep := Separator(lang); sep != "." {
		value = strings.ReplaceAll(value, sep, ".")
	}
	amount, ok := ParseNumber(value)
	if !ok || value == "" {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// ParseNumber parses user-entered decimal text. Surrounding whitespace is
// ignored and empty text is zero. Only decimal notation is accepted: inf, nan,
// digit separators and hexadecimal forms such as 0x10 are rejected, as are
// non-finite results.
func ParseNumber(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(text, "_") || strings.Contains(lower, "0x") {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

// Percent renders ratio as a whole percentage, e.g. 0.145 -> "15".
func Percent(ratio float64) string {
	if !isFinite(ratio) {
		return "0"
	}
	return decimal.NewFromFloat(ratio).Shift(2).StringFixed(0)
}

// PercentExact renders ratio as a percentage without rounding, e.g. 0.185 -> "18.5".
func PercentExact(ratio float64) string {
	if !isFinite(ratio) {
		return "0"
	}
	return decimal.NewFromFloat(ratio).Shift(2).String()
}

func localize(fixed string, lang i18n.Lang) string {
	if sep := Separator(lang); sep != "." {
		return strings.Replace(fixed, ".", sep, 1)
	}
	return fixed
}

func render(numeral string, lang i18n.Lang, withCurrency bool) string {
	if !withCurrency {
		return numeral
	}
	return i18n.T(lang, i18n.KeyPrice, numeral)
}

func trimZeros(numeral, sep string) string {
	if !strings.Contains(numeral, sep) {
		return numeral
	}
	numeral = strings.TrimRight(numeral, "0")
	return strings.TrimSuffix(numeral, sep)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
