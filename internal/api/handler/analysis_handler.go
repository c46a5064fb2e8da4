package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cimco/maintenance-system/internal/api/metrics"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

type AnalysisHandler struct {
	service ports.AnalysisService
}

func NewAnalysisHandler(service ports.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

type analyzeDescriptionRequest struct {
	Description string `json:"description" validate:"required"`
	Context     string `json:"context"`
}

type analyzePhotoRequest struct {
	Image   string `json:"image" validate:"required"` // base64-encoded JPEG
	Context string `json:"context"`
}

// AnalyzeDescription handles POST /v1/analysis.
//
// @Summary      Analyze a textual damage description
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      analyzeDescriptionRequest  true  "Description and optional context"
// @Success      200   {object}  ports.AnalysisResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/analysis [post]
func (h *AnalysisHandler) AnalyzeDescription(c echo.Context) error {
	var req analyzeDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return h.respond(c, "description", func() (*ports.AnalysisResult, error) {
		return h.service.AnalyzeDescription(c.Request().Context(), req.Description, req.Context)
	})
}

// AnalyzePhoto handles POST /v1/analysis/photo.
//
// @Summary      Analyze a maintenance photo
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      analyzePhotoRequest  true  "Base64 photo and optional context"
// @Success      200   {object}  ports.AnalysisResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/analysis/photo [post]
func (h *AnalysisHandler) AnalyzePhoto(c echo.Context) error {
	var req analyzePhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return h.respond(c, "photo", func() (*ports.AnalysisResult, error) {
		return h.service.AnalyzePhoto(c.Request().Context(), req.Image, req.Context)
	})
}

func (h *AnalysisHandler) respond(c echo.Context, kind string, call func() (*ports.AnalysisResult, error)) error {
	start := time.Now()
	result, err := call()
	metrics.AnalysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AnalysisRequestsTotal.WithLabelValues(kind, "error").Inc()
		return echo.NewHTTPError(http.StatusBadGateway, "analysis provider unavailable")
	}
	metrics.AnalysisRequestsTotal.WithLabelValues(kind, "ok").Inc()
	return c.JSON(http.StatusOK, result)
}
