package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"distribution-service/internal/http/middleware"
	"distribution-service/internal/model"
	"distribution-service/internal/service"
)

// StationService is the lifecycle surface the handlers depend on.
type StationService interface {
	Board(ctx context.Context, principal model.Principal) (*model.StationBoard, error)
	Register(ctx context.Context, principal model.Principal, name, address, phone string) (*model.Station, error)
	Approve(ctx context.Context, principal model.Principal, id uuid.UUID) error
	Reject(ctx context.Context, principal model.Principal, id uuid.UUID) error
}

// ReportService is the analytics and ledger surface.
type ReportService interface {
	Dashboard(ctx context.Context, principal model.Principal) (*model.DashboardSummary, error)
	DailySeries(ctx context.Context, principal model.Principal, windowDays int) ([]model.DailyPoint, error)
	MonthlySeries(ctx context.Context, principal model.Principal, windowMonths int) ([]model.MonthlyPoint, error)
	PumpedToday(ctx context.Context, principal model.Principal) ([]model.StationPumped, error)
	History(ctx context.Context, principal model.Principal, filter model.HistoryFilter, page, pageSize int) (*model.HistoryPage, error)
	RecordDistribution(ctx context.Context, principal model.Principal, stationID uuid.UUID, amount float64, fuelType model.FuelType, at time.Time) (*model.DistributionRecord, error)
	RecordPumped(ctx context.Context, principal model.Principal, stationID uuid.UUID, amount float64, at time.Time) (*model.PumpTransaction, error)
}

type Handler struct {
	stations        StationService
	reports         ReportService
	defaultPageSize int
	maxPageSize     int
	log             zerolog.Logger
}

func NewHandler(stations StationService, reports ReportService, defaultPageSize, maxPageSize int, log zerolog.Logger) *Handler {
	return &Handler{
		stations:        stations,
		reports:         reports,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		log:             log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(authMiddleware)

	api.GET("/stations", h.getStationBoard)
	api.POST("/stations", h.registerStation)
	api.PUT("/stations/:id/activate", h.approveStation)
	api.DELETE("/stations/:id", h.rejectStation)

	api.GET("/dashboard", h.getDashboard)
	api.GET("/dashboard/daily", h.getDailySeries)
	api.GET("/dashboard/monthly", h.getMonthlySeries)
	api.GET("/dashboard/pumped-today", h.getPumpedToday)

	api.GET("/distributions", h.getHistory)
	api.POST("/distributions", h.recordDistribution)
	api.POST("/pump-transactions", h.recordPump)
}

func (h *Handler) getStationBoard(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	board, err := h.stations.Board(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(board))
}

type registerStationRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

func (h *Handler) registerStation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req registerStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	station, err := h.stations.Register(c.Request.Context(), principal, req.Name, req.Address, req.PhoneNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(station))
}

func (h *Handler) approveStation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid station id"))
		return
	}

	if err := h.stations.Approve(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": model.StationActive}))
}

func (h *Handler) rejectStation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid station id"))
		return
	}

	if err := h.stations.Reject(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": model.StationRemoved}))
}

func (h *Handler) getDashboard(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	summary, err := h.reports.Dashboard(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(summary))
}

func (h *Handler) getDailySeries(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	series, err := h.reports.DailySeries(c.Request.Context(), principal, parsePositiveInt(c.Query("days")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(series))
}

func (h *Handler) getMonthlySeries(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	series, err := h.reports.MonthlySeries(c.Request.Context(), principal, parsePositiveInt(c.Query("months")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(series))
}

func (h *Handler) getPumpedToday(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	rows, err := h.reports.PumpedToday(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(rows))
}

func (h *Handler) getHistory(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := model.HistoryFilter{Range: model.ParseRangeKind(c.Query("range"))}
	if ft, ok := model.ParseFuelType(c.Query("fuel_type")); ok {
		filter.FuelType = &ft
	}

	page := parsePositiveInt(c.Query("page"))
	if page == 0 {
		page = 1
	}
	pageSize := parsePositiveInt(c.Query("page_size"))
	if pageSize == 0 {
		pageSize = h.defaultPageSize
	}
	if pageSize > h.maxPageSize {
		pageSize = h.maxPageSize
	}

	result, err := h.reports.History(c.Request.Context(), principal, filter, page, pageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

type recordDistributionRequest struct {
	StationID  uuid.UUID `json:"station_id"`
	FuelAmount float64   `json:"fuel_amount"`
	FuelType   string    `json:"fuel_type"`
	Timestamp  string    `json:"timestamp"`
}

func (h *Handler) recordDistribution(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req recordDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	fuelType, ok := model.ParseFuelType(req.FuelType)
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse("invalid fuel type"))
		return
	}

	var at time.Time
	if ts := strings.TrimSpace(req.Timestamp); ts != "" {
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid timestamp"))
			return
		}
		at = parsed
	}

	record, err := h.reports.RecordDistribution(c.Request.Context(), principal, req.StationID, req.FuelAmount, fuelType, at)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(record))
}

type recordPumpRequest struct {
	StationID    uuid.UUID `json:"station_id"`
	PumpedAmount float64   `json:"pumped_amount"`
	RecordedAt   string    `json:"recorded_at"`
}

func (h *Handler) recordPump(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req recordPumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	var at time.Time
	if ts := strings.TrimSpace(req.RecordedAt); ts != "" {
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid recorded_at"))
			return
		}
		at = parsed
	}

	tx, err := h.reports.RecordPumped(c.Request.Context(), principal, req.StationID, req.PumpedAmount, at)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(tx))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrAlreadyTerminal), errors.Is(err, service.ErrStationNotActive):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrDataInconsistent):
		c.JSON(http.StatusUnprocessableEntity, errorResponse(err.Error()))
	case errors.Is(err, service.ErrUpstreamUnavailable):
		h.log.Error().Err(err).Msg("record store failure")
		c.JSON(http.StatusBadGateway, errorResponse("record store unavailable"))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func parsePositiveInt(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
