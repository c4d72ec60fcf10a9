package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/smallbiznis/feefeefee/internal/i18n"
)

type placesResponse struct {
	Options []directory.Option `json:"options"`
	Summary string             `json:"summary"`
}

func (s *Server) suggester() *directory.Suggester {
	return directory.NewSuggester(directory.Entries(), s.settings.Get().VAT)
}

func (s *Server) ListPlaces(c *gin.Context) {
	lang := s.requestLang(c)
	suggester := s.suggester()

	items := suggester.Suggest(c.Query("q"))
	options := make([]directory.Option, 0, len(items))
	for _, item := range items {
		options = append(options, suggester.Render(item, lang))
	}
	s.metrics.RecordSearch()

	c.JSON(http.StatusOK, gin.H{"data": placesResponse{
		Options: options,
		Summary: i18n.T(lang, i18n.KeySearchInputListboxResults, strconv.Itoa(len(options)), i18n.T(lang, i18n.KeySearchInputListboxHint)),
	}})
}
