package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

type PartHandler struct {
	service ports.PartService
}

func NewPartHandler(service ports.PartService) *PartHandler {
	return &PartHandler{service: service}
}

type createPartRequest struct {
	Name         string  `json:"name"           validate:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"       validate:"required"`
	PartType     string  `json:"part_type"`
	Manufacturer string  `json:"manufacturer"`
	PartNumber   string  `json:"part_number"`
	Quantity     int     `json:"quantity"       validate:"gte=0"`
	MinQuantity  int     `json:"min_quantity"   validate:"gte=0"`
	LeadTimeDays int     `json:"lead_time_days" validate:"gte=0"`
	Location     string  `json:"location"`
	UnitCost     float64 `json:"unit_cost"      validate:"gte=0"`
	Supplier     string  `json:"supplier"`
}

type adjustQuantityRequest struct {
	Delta int `json:"quantity_change" validate:"required"`
}

type updateLocationRequest struct {
	Location string `json:"location" validate:"required"`
}

// List handles GET /v1/parts with pagination and optional filters.
//
// @Summary      List parts (paginated)
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size"
// @Param        category   query  string  false  "Category filter"
// @Param        search     query  string  false  "Name search"
// @Success      200  {object}  domain.PaginatedParts
// @Failure      401  {object}  map[string]string
// @Router       /v1/parts [get]
func (h *PartHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	filter := ports.PartFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	result, err := h.service.ListPaginated(c.Request().Context(), page, pageSize, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Create handles POST /v1/parts.
//
// @Summary      Create an inventory part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPartRequest  true  "Part details"
// @Success      201   {object}  domain.Part
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/parts [post]
func (h *PartHandler) Create(c echo.Context) error {
	var req createPartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	part, err := h.service.Create(c.Request().Context(), &domain.Part{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		PartType:     req.PartType,
		Manufacturer: req.Manufacturer,
		PartNumber:   req.PartNumber,
		Quantity:     req.Quantity,
		MinQuantity:  req.MinQuantity,
		LeadTimeDays: req.LeadTimeDays,
		Location:     req.Location,
		UnitCost:     req.UnitCost,
		Supplier:     req.Supplier,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, part)
}

// AdjustQuantity handles PATCH /v1/parts/:id/quantity.
//
// @Summary      Adjust part stock level
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Part ID"
// @Param        body  body      adjustQuantityRequest  true  "Signed quantity delta"
// @Success      200   {object}  domain.Part
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/parts/{id}/quantity [patch]
func (h *PartHandler) AdjustQuantity(c echo.Context) error {
	var req adjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	part, err := h.service.AdjustQuantity(c.Request().Context(), c.Param("id"), req.Delta)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, part)
}

// UpdateLocation handles PATCH /v1/parts/:id/location.
//
// @Summary      Update part storage location
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Part ID"
// @Param        body  body      updateLocationRequest  true  "New location"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/parts/{id}/location [patch]
func (h *PartHandler) UpdateLocation(c echo.Context) error {
	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.UpdateLocation(c.Request().Context(), c.Param("id"), req.Location); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "location updated"})
}

// Delete handles DELETE /v1/parts/:id. Admin-gated.
//
// @Summary      Delete a part
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Part ID"
// @Success      204  "deleted"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/parts/{id} [delete]
func (h *PartHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// LowStock handles GET /v1/parts/low-stock.
//
// @Summary      List parts at or below the reorder floor
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Part
// @Failure      401  {object}  map[string]string
// @Router       /v1/parts/low-stock [get]
func (h *PartHandler) LowStock(c echo.Context) error {
	parts, err := h.service.ListLowStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parts)
}

// ListOrders handles GET /v1/orders/incoming.
//
// @Summary      List incoming parts orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.IncomingOrder
// @Failure      401  {object}  map[string]string
// @Router       /v1/orders/incoming [get]
func (h *PartHandler) ListOrders(c echo.Context) error {
	orders, err := h.service.ListIncomingOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ReceiveOrder handles POST /v1/orders/:id/receive — marks the order
// received and restocks the linked part.
//
// @Summary      Receive an incoming order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/orders/{id}/receive [post]
func (h *PartHandler) ReceiveOrder(c echo.Context) error {
	if err := h.service.ReceiveOrder(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order received"})
}
