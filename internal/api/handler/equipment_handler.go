package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

type EquipmentHandler struct {
	service ports.EquipmentService
}

func NewEquipmentHandler(service ports.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

type createEquipmentRequest struct {
	Name        string  `json:"name"         validate:"required"`
	Status      string  `json:"status"       validate:"required,oneof=active maintenance down"`
	HealthScore float64 `json:"health_score" validate:"gte=0,lte=100"`
}

type updateEquipmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active maintenance down"`
}

// List handles GET /v1/equipment.
//
// @Summary      List all equipment
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Equipment
// @Failure      401  {object}  map[string]string
// @Router       /v1/equipment [get]
func (h *EquipmentHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Stats handles GET /v1/equipment/stats.
//
// @Summary      Aggregated equipment statistics
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.EquipmentStats
// @Failure      401  {object}  map[string]string
// @Router       /v1/equipment/stats [get]
func (h *EquipmentHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Create handles POST /v1/equipment. Admin-gated.
//
// @Summary      Register new equipment
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEquipmentRequest  true  "Equipment details"
// @Success      201   {object}  domain.Equipment
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/equipment [post]
func (h *EquipmentHandler) Create(c echo.Context) error {
	var req createEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	eq, err := h.service.Create(c.Request().Context(), req.Name, domain.EquipmentStatus(req.Status), req.HealthScore)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, eq)
}

// UpdateStatus handles PATCH /v1/equipment/:id/status.
//
// @Summary      Update equipment status
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                        true  "Equipment ID"
// @Param        body  body      updateEquipmentStatusRequest  true  "New status"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/equipment/{id}/status [patch]
func (h *EquipmentHandler) UpdateStatus(c echo.Context) error {
	var req updateEquipmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.EquipmentStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "status updated"})
}

// Delete handles DELETE /v1/equipment/:id. Admin-gated.
//
// @Summary      Delete equipment
// @Tags         equipment
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Equipment ID"
// @Success      204  "deleted"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
