package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
)

// OrderDetailsHandler serves the order-detail resource. Creation is the
// composite operation; line-level reads and writes reuse the standard
// resource endpoints.
type OrderDetailsHandler struct {
	service usecase.OrderDetailsUsecase
}

// NewOrderDetailsHandler is the constructor for OrderDetailsHandler.
func NewOrderDetailsHandler(service usecase.OrderDetailsUsecase) *OrderDetailsHandler {
	return &OrderDetailsHandler{service: service}
}

// Create handles POST /order-details/create: one new order carrying every
// supplied line. The order always belongs to the authenticated caller; any
// user id in the payload is ignored.
func (h *OrderDetailsHandler) Create(c echo.Context) error {
	var input usecase.CreateOrderDetailsInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	callerID, ok := c.Get(middleware.ContextKeyUserID).(int)
	if !ok || callerID <= 0 {
		return domainerrors.ErrInvalidToken.WithDetails("authenticated caller required")
	}

	input.UserID = callerID

	if err := c.Validate(&input); err != nil {
		return err
	}

	out, err := h.service.CreateWithOrder(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, out)
}

// GetOrder handles GET /order-details/get-order?id=: the order aggregate
// with all its lines.
func (h *OrderDetailsHandler) GetOrder(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}

	out, err := h.service.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out)
}

// GetByID handles GET /order-details/get-by-id?id=.
func (h *OrderDetailsHandler) GetByID(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}

	dto, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, dto)
}

// GetAll handles GET /order-details/get-all?pageNumber=&pageSize=.
func (h *OrderDetailsHandler) GetAll(c echo.Context) error {
	dtos, err := h.service.GetAll(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, dtos)
}

// Update handles PUT /order-details/:id.
func (h *OrderDetailsHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.OrderDetailOutput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	if input.ID != 0 && input.ID != id {
		return domainerrors.ErrIDMismatch
	}

	if err := h.service.Update(c.Request().Context(), id, input); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Delete handles DELETE /order-details/:id.
func (h *OrderDetailsHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}
