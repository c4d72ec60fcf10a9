package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	formdomain "github.com/smallbiznis/feefeefee/internal/form/domain"
	"go.uber.org/zap"
)

func (s *Server) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.form.View()})
}

func (s *Server) ClearForm(c *gin.Context) {
	s.form.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": s.form.View()})
}

func (s *Server) AddItem(c *gin.Context) {
	item, err := s.form.AddItem(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"item": item,
		"form": s.form.View(),
	}})
}

type editItemRequest struct {
	Value *string `json:"value"`
}

type editItemResponse struct {
	Result formdomain.EditResult `json:"result"`
	Form   formdomain.View       `json:"form"`
}

// EditItem always answers 200 for a known item; a rejected value comes back
// with committed=false and the text as pending.
func (s *Server) EditItem(c *gin.Context) {
	var req editItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		AbortWithError(c, newValidationError("value", "required", "value is required"))
		return
	}

	res, err := s.form.EditItem(c.Request.Context(), c.Param("id"), *req.Value)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": editItemResponse{Result: res, Form: s.form.View()}})
}

func (s *Server) RemoveItem(c *gin.Context) {
	if err := s.form.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s.form.View()})
}

func (s *Server) RenderReceipt(c *gin.Context) {
	doc, err := s.receipts.Render(c.Request.Context(), s.form.View())
	if err != nil {
		s.log.Error("receipt render failed", zap.Error(err))
		AbortWithError(c, err)
		return
	}
	s.metrics.RecordReceipt()

	c.Header("Content-Disposition", `inline; filename="feefeefee-receipt.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
