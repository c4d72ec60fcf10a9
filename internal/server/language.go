package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/feefeefee/internal/i18n"
)

type languagesResponse struct {
	Current i18n.Lang       `json:"current"`
	Others  []i18n.Language `json:"others"`
	All     []i18n.Language `json:"all"`
}

func (s *Server) ListLanguages(c *gin.Context) {
	current := s.form.Lang()
	c.JSON(http.StatusOK, gin.H{"data": languagesResponse{
		Current: current,
		Others:  i18n.Others(current),
		All:     i18n.Languages,
	}})
}

type setLanguageRequest struct {
	Lang string `json:"lang"`
}

type setLanguageResponse struct {
	Lang    i18n.Lang `json:"lang"`
	Changed bool      `json:"changed"`
}

// SetLanguage ignores unknown codes and reports changed=false.
func (s *Server) SetLanguage(c *gin.Context) {
	var req setLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	lang, changed := s.form.SetLanguage(c.Request.Context(), req.Lang)
	c.Set(contextLangKey, string(lang))
	c.JSON(http.StatusOK, gin.H{"data": setLanguageResponse{Lang: lang, Changed: changed}})
}

type messageResponse struct {
	Key  string    `json:"key"`
	Lang i18n.Lang `json:"lang"`
	Text string    `json:"text"`
}

// GetMessage renders a message template. Repeated ?arg= values fill $1..$n.
func (s *Server) GetMessage(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if !i18n.Has(key) {
		AbortWithError(c, ErrNotFound)
		return
	}

	lang := s.requestLang(c)
	rawArgs := c.QueryArray("arg")
	args := make([]any, 0, len(rawArgs))
	for _, arg := range rawArgs {
		args = append(args, arg)
	}

	c.JSON(http.StatusOK, gin.H{"data": messageResponse{
		Key:  key,
		Lang: lang,
		Text: i18n.T(lang, key, args...),
	}})
}
