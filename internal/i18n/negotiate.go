package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.MustParse("ka"),
	language.Russian,
})

var matcherLangs = []Lang{English, Georgian, Russian}

// Preferred picks the best selectable language for an Accept-Language style
// header. Locale strings such as "ru_RU.UTF-8" are accepted too. It falls back
// to def when nothing matches.
func Preferred(header string, def Lang) Lang {
	if !IsValid(string(def)) {
		def = DefaultLang
	}

	header = normalizeLocale(header)
	if header == "" {
		return def
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(matcherLangs) {
		return def
	}
	return matcherLangs[index]
}

func normalizeLocale(value string) string {
	value = strings.TrimSpace(value)
	if i := strings.IndexByte(value, '.'); i >= 0 && !strings.Contains(value, ",") {
		value = value[:i]
	}
	if value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}
