package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andy/toolrent/internal/service"
)

type Handler struct {
	svc service.RentalService
	log *zap.Logger
}

func NewHandler(svc service.RentalService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts every endpoint on r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.GET("/items", h.ListItems)
	r.GET("/items/:code", h.GetItem)
	r.GET("/holidays/:year", h.ListHolidays)
	r.POST("/rentals", h.CreateRental)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) ListItems(c *gin.Context) {
	items := h.svc.Items()
	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = newItemResponse(item)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.svc.Item(c.Param("code"))
	if err != nil {
		h.sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newItemResponse(item))
}

func (h *Handler) ListHolidays(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		h.sendError(c, http.StatusBadRequest, "year must be a number between 1 and 9999", err)
		return
	}

	hs := h.svc.Holidays(year)
	resp := make([]HolidayResponse, len(hs))
	for i, hol := range hs {
		resp[i] = newHolidayResponse(hol)
	}
	c.JSON(http.StatusOK, resp)
}

// CreateRental computes a contract. ?breakdown=true adds the per-day schedule.
func (h *Handler) CreateRental(c *gin.Context) {
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	breakdown, _ := strconv.ParseBool(c.Query("breakdown"))
	contract, err := h.svc.Quote(service.RentalRequest{
		ItemCode:        req.ItemCode,
		RentalDays:      req.RentalDays,
		DiscountPercent: req.DiscountPercent,
		StartDate:       req.StartDate,
		Breakdown:       breakdown,
	})
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newContractResponse(contract, breakdown))
}

// sendServiceError maps rental service sentinels to status codes
func (h *Handler) sendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		h.sendError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrInvalidDiscount),
		errors.Is(err, service.ErrInvalidDate):
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
	default:
		h.sendError(c, http.StatusInternalServerError, "internal server error", err)
	}
}

func (h *Handler) sendError(c *gin.Context, statusCode int, message string, err error) {
	fields := []zap.Field{
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if statusCode >= http.StatusInternalServerError {
		h.log.Error(message, fields...)
	} else {
		h.log.Debug(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}
