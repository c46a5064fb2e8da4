package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cimco/maintenance-system/internal/core/ports"
)

// LogDispatcher is the interface the handler uses to enqueue log entries.
type LogDispatcher interface {
	Enqueue(in ports.MaintenanceLogInput)
	EnqueueBatch(ins []ports.MaintenanceLogInput)
}

// LogHandler handles maintenance-log ingestion from devices syncing their
// offline journals.
type LogHandler struct {
	dispatcher LogDispatcher
	service    ports.LogService
}

func NewLogHandler(dispatcher LogDispatcher, service ports.LogService) *LogHandler {
	return &LogHandler{dispatcher: dispatcher, service: service}
}

type maintenanceLogRequest struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	Action      string `json:"action"       validate:"required"`
	Timestamp   int64  `json:"timestamp"    validate:"required,gt=0"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Receive handles POST /v1/logs — enqueues a single entry, returns 202.
//
// @Summary      Sync a single maintenance-log entry
// @Tags         logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      maintenanceLogRequest  true  "Log entry"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/logs [post]
func (h *LogHandler) Receive(c echo.Context) error {
	var req maintenanceLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toLogInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "log accepted"})
}

// ReceiveBatch handles POST /v1/logs/batch — enqueues a whole offline
// journal, returns 202.
//
// @Summary      Sync a batch of maintenance-log entries
// @Tags         logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []maintenanceLogRequest  true  "Array of log entries"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/logs/batch [post]
func (h *LogHandler) ReceiveBatch(c echo.Context) error {
	var reqs []maintenanceLogRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.MaintenanceLogInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("log[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toLogInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "logs accepted",
		Count:   len(inputs),
	})
}

// ListByEquipment handles GET /v1/logs/:equipment_id.
//
// @Summary      List synced logs for a machine
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        equipment_id  path  string  true  "Equipment ID"
// @Success      200  {array}   domain.MaintenanceLog
// @Failure      401  {object}  map[string]string
// @Router       /v1/logs/{equipment_id} [get]
func (h *LogHandler) ListByEquipment(c echo.Context) error {
	logs, err := h.service.ListByEquipment(c.Request().Context(), c.Param("equipment_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

func toLogInput(r maintenanceLogRequest) ports.MaintenanceLogInput {
	return ports.MaintenanceLogInput{
		EquipmentID: r.EquipmentID,
		Action:      r.Action,
		Timestamp:   r.Timestamp,
	}
}
