package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Shubhk02/MGNREGA-Finding/pkg/model"
)

// APIVersion is reported by the identity endpoint
const APIVersion = "1.0"

// DashboardService defines the pipeline operations the handlers depend on
type DashboardService interface {
	GetStates(ctx context.Context) []model.State
	GetDistricts(ctx context.Context, stateCode string) ([]model.District, error)
	GetCurrentPerformance(ctx context.Context, districtCode string) (model.PerformanceRecord, error)
	GetHistoricalPerformance(ctx context.Context, districtCode string, months int) ([]model.PerformanceRecord, error)
	ComparePerformance(ctx context.Context, districtCode string) (model.PerformanceComparison, error)
}

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	service          DashboardService
	defaultStateCode string
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardService, defaultStateCode string) *DashboardHandler {
	return &DashboardHandler{
		service:          service,
		defaultStateCode: defaultStateCode,
	}
}

// Root handles GET /api/
func (h *DashboardHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "MGNREGA Dashboard API",
		"version": APIVersion,
	})
}

// GetStates handles GET /api/states
func (h *DashboardHandler) GetStates(c *gin.Context) {
	states := h.service.GetStates(c.Request.Context())
	c.JSON(http.StatusOK, model.StatesResponse{Success: true, Data: states})
}

// GetDistricts handles GET /api/districts
func (h *DashboardHandler) GetDistricts(c *gin.Context) {
	stateCode := c.DefaultQuery("state_code", h.defaultStateCode)

	districts, err := h.service.GetDistricts(c.Request.Context(), stateCode)
	if err != nil {
		logrus.WithError(err).Errorf("Error fetching districts for state %s", stateCode)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch districts"})
		return
	}

	c.JSON(http.StatusOK, model.DistrictsResponse{Success: true, Data: districts})
}

// GetCurrentPerformance handles GET /api/district/:district_code/current
func (h *DashboardHandler) GetCurrentPerformance(c *gin.Context) {
	districtCode := c.Param("district_code")

	record, err := h.service.GetCurrentPerformance(c.Request.Context(), districtCode)
	if err != nil {
		logrus.WithError(err).Errorf("Error fetching current performance for district %s", districtCode)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch current performance"})
		return
	}

	c.JSON(http.StatusOK, model.PerformanceResponse{Success: true, Data: record})
}

// historyQuery binds and validates the months range before the pipeline runs
type historyQuery struct {
	Months int `form:"months,default=6" binding:"min=1,max=24"`
}

// GetHistoricalPerformance handles GET /api/district/:district_code/history
func (h *DashboardHandler) GetHistoricalPerformance(c *gin.Context) {
	districtCode := c.Param("district_code")

	var query historyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "months must be between 1 and 24"})
		return
	}

	history, err := h.service.GetHistoricalPerformance(c.Request.Context(), districtCode, query.Months)
	if err != nil {
		logrus.WithError(err).Errorf("Error fetching history for district %s", districtCode)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch historical data"})
		return
	}

	c.JSON(http.StatusOK, model.HistoricalResponse{Success: true, Data: history})
}

// ComparePerformance handles GET /api/district/:district_code/compare
func (h *DashboardHandler) ComparePerformance(c *gin.Context) {
	districtCode := c.Param("district_code")

	comparison, err := h.service.ComparePerformance(c.Request.Context(), districtCode)
	if err != nil {
		logrus.WithError(err).Errorf("Error comparing performance for district %s", districtCode)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compare performance"})
		return
	}

	c.JSON(http.StatusOK, model.ComparisonResponse{Success: true, Data: comparison})
}
