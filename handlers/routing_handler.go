package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kacper0199/AGH-Navigator-App/models"
	"github.com/Kacper0199/AGH-Navigator-App/pathengine"
	"github.com/Kacper0199/AGH-Navigator-App/services"
)

// RoutingHandler exposes the route engine over HTTP.
type RoutingHandler struct {
	routingService *services.RoutingService
	logger         *zap.Logger
}

func NewRoutingHandler(routingService *services.RoutingService, logger *zap.Logger) *RoutingHandler {
	return &RoutingHandler{
		routingService: routingService,
		logger:         logger,
	}
}

func (h *RoutingHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/routes", h.CalculateRoute)
	r.GET("/api/locations", h.ListLocations)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

// CalculateRoute handles POST /api/routes.
func (h *RoutingHandler) CalculateRoute(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("INVALID_REQUEST", err.Error()))
		return
	}

	resp, err := h.routingService.FindRoute(c.Request.Context(), req)
	if err != nil {
		var nferr *pathengine.NotFoundError
		if errors.As(err, &nferr) {
			c.JSON(http.StatusNotFound, errorResponse("LOCATION_NOT_FOUND", nferr.Error()))
			return
		}

		h.logger.Error("route lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "could not compute route"))

		return
	}

	c.JSON(http.StatusOK, successResponse(resp))
}

// ListLocations handles GET /api/locations.
func (h *RoutingHandler) ListLocations(c *gin.Context) {
	locations := h.routingService.ListLocations()
	c.JSON(http.StatusOK, successResponse(models.LocationsResponse{
		Locations: locations,
		Count:     len(locations),
	}))
}

func successResponse(data interface{}) models.ApiResponse {
	return models.ApiResponse{
		Success:   true,
		Data:      data,
		RequestID: uuid.NewString(),
	}
}

func errorResponse(code, message string) models.ApiResponse {
	return models.ApiResponse{
		Success:   false,
		Error:     &models.ApiError{Code: code, Message: message},
		RequestID: uuid.NewString(),
	}
}
