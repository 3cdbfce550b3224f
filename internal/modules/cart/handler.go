package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/callmeniyu/Oastel-sub001/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cart/summary", h.Summary)
}

func (h *Handler) Summary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	for _, it := range req.Items {
		if it.Price < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Item price cannot be negative")
			return
		}
	}

	response.Success(c, http.StatusOK, gin.H{"summary": h.service.Summarize(req.Items)})
}
