// Package i18n holds the compiled-in message table and language helpers.
//
// Messages are keyed by name and language. A missing translation falls back to
// English; an unknown key or language renders as "(key)" so nothing is silently
// swallowed.
package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// Lang is an interface language code.
type Lang string

const (
	English  Lang = "en"
	Georgian Lang = "ka"
	Russian  Lang = "ru"
)

// DefaultLang is used when no valid language is known.
const DefaultLang = English

// Language describes a selectable interface language.
type Language struct {
	Code Lang   `json:"code"`
	Name string `json:"name"`
}

// Languages lists the selectable languages in display order.
var Languages = []Language{
	{Code: English, Name: "English"},
	{Code: Georgian, Name: "ქართული"},
	{Code: Russian, Name: "Русский"},
}

// IsValid reports whether code is one of the selectable languages.
func IsValid(code string) bool {
	switch Lang(code) {
	case English, Georgian, Russian:
		return true
	default:
		return false
	}
}

// Parse returns the language for code, or false when the code is not selectable.
func Parse(code string) (Lang, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !IsValid(code) {
		return "", false
	}
	return Lang(code), true
}

// Others returns the selectable languages except lang.
func Others(lang Lang) []Language {
	out := make([]Language, 0, len(Languages)-1)
	for _, l := range Languages {
		if l.Code == lang {
			continue
		}
		out = append(out, l)
	}
	return out
}

// T renders the message for key in lang, replacing $1, $2, ... with args in order.
func T(lang Lang, key string, args ...any) string {
	invalid := "(" + key + ")"
	if !IsValid(string(lang)) {
		return invalid
	}

	entry, ok := messages[key]
	if !ok {
		return invalid
	}

	result := entry[lang]
	if result == "" {
		result = entry[English]
	}
	if result == "" {
		return invalid
	}

	for i, arg := range args {
		placeholder := "$" + strconv.Itoa(i+1)
		result = strings.ReplaceAll(result, placeholder, fmt.Sprint(arg))
	}

	return result
}

// Has reports whether key exists in the message table.
func Has(key string) bool {
	_, ok := messages[key]
	return ok
}
