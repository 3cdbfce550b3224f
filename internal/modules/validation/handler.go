package validation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/callmeniyu/Oastel-sub001/internal/domain"
	"github.com/callmeniyu/Oastel-sub001/internal/pkg/response"
	"github.com/callmeniyu/Oastel-sub001/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/timeslots", h.ListTimeSlots)
	rg.GET("/server-time", h.ServerTime)
	rg.POST("/slots/validate", h.ValidateSlot)
	rg.POST("/slots/validate-booking", h.ValidateForBooking)
	rg.POST("/cart/validate", h.ValidateCart)
}

func (h *Handler) ListTimeSlots(c *gin.Context) {
	var q TimeSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	if errs := validator.Validate(&q); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", errs)
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), domain.PackageType(q.PackageType), q.PackageID, q.Date)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "INVENTORY_ERROR", "Failed to query time slots")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) ServerTime(c *gin.Context) {
	now := h.service.Now(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{
		"now":  now.Format(time.RFC3339),
		"date": now.Format("2006-01-02"),
	})
}

// ValidateSlot always answers 200 with a verdict: invalid input is a
// verdict state for the cart UI, not a protocol error.
func (h *Handler) ValidateSlot(c *gin.Context) {
	var req ValidateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v := h.service.ValidateSlot(
		c.Request.Context(),
		domain.PackageType(req.PackageType),
		req.PackageID,
		req.Date,
		req.Time,
		req.Guests,
	)
	response.Success(c, http.StatusOK, gin.H{"verdict": v})
}

func (h *Handler) ValidateForBooking(c *gin.Context) {
	var req ValidateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v := h.service.ValidateForBooking(
		c.Request.Context(),
		domain.PackageType(req.PackageType),
		req.PackageID,
		req.Date,
		req.Time,
		req.Guests,
	)
	response.Success(c, http.StatusOK, gin.H{"verdict": v})
}

func (h *Handler) ValidateCart(c *gin.Context) {
	var req ValidateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	verdicts := h.service.ValidateCartItems(c.Request.Context(), req.Items)
	response.Success(c, http.StatusOK, gin.H{"verdicts": verdicts})
}
