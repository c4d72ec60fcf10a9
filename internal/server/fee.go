package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/smallbiznis/feefeefee/internal/fee"
)

type feeResponse struct {
	Query string  `json:"query"`
	Fee   fee.Fee `json:"fee"`
	Badge string  `json:"badge,omitempty"`
}

// GetFee resolves q without touching the form.
func (s *Server) GetFee(c *gin.Context) {
	query := c.Query("q")
	f := fee.NewResolver(s.settings.Get().VAT, directory.Entries()).ResolveQuery(query)
	c.JSON(http.StatusOK, gin.H{"data": feeResponse{Query: query, Fee: f, Badge: f.Badge()}})
}

type feeQueryRequest struct {
	Query string `json:"query"`
}

func (s *Server) SetFeeQuery(c *gin.Context) {
	var req feeQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	f := s.form.SetQuery(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, gin.H{"data": feeResponse{Query: req.Query, Fee: f, Badge: f.Badge()}})
}

type confirmFeeRequest struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func (s *Server) ConfirmFee(c *gin.Context) {
	var req confirmFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	slug := strings.TrimSpace(req.Slug)
	name := strings.TrimSpace(req.Name)
	if slug == "" && name == "" {
		AbortWithError(c, newValidationError("slug", "required", "slug or name is required"))
		return
	}

	entries := directory.Entries()
	entry, ok := directory.FindBySlug(slug, entries)
	if !ok {
		entry, ok = directory.FindByName(name, entries)
	}
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}

	sub := s.form.Confirm(c.Request.Context(), entry)
	c.JSON(http.StatusOK, gin.H{"data": sub})
}

type submitFeeRequest struct {
	Text string `json:"text"`
}

func (s *Server) SubmitFee(c *gin.Context) {
	var req submitFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	sub, err := s.form.Submit(c.Request.Context(), req.Text)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sub})
}
