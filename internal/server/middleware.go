package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/feefeefee/internal/i18n"
)

const contextLangKey = "lang"

// requestLang resolves the language of a response: an explicit ?lang= wins,
// then Accept-Language, then the form's current language.
func (s *Server) requestLang(c *gin.Context) i18n.Lang {
	current := s.form.Lang()
	lang := current
	if explicit, ok := i18n.Parse(c.Query("lang")); ok {
		lang = explicit
	} else if header := strings.TrimSpace(c.GetHeader("Accept-Language")); header != "" {
		lang = i18n.Preferred(header, current)
	}
	c.Set(contextLangKey, string(lang))
	return lang
}

// FormLanguage tags the request with the form's current language for logs and
// localized errors.
func (s *Server) FormLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextLangKey, string(s.form.Lang()))
		c.Next()
	}
}
