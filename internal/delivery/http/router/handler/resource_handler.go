// Package handler contains the HTTP handlers bound by the router.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
)

// ResourceHandler serves the five standard endpoints of one resource. C is
// the creation payload, D the full representation; one instantiation exists
// per resource.
type ResourceHandler[C any, D any] struct {
	service usecase.CRUDUsecase[C, D]
}

// NewResourceHandler builds a handler around one resource service.
func NewResourceHandler[C any, D any](service usecase.CRUDUsecase[C, D]) *ResourceHandler[C, D] {
	return &ResourceHandler[C, D]{service: service}
}

// Create handles POST /{resource}/create.
func (h *ResourceHandler[C, D]) Create(c echo.Context) error {
	var input C
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, id)
}

// GetByID handles GET /{resource}/get-by-id?id=.
func (h *ResourceHandler[C, D]) GetByID(c echo.Context) error {
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

// GetAll handles GET /{resource}/get-all?pageNumber=&pageSize=.
func (h *ResourceHandler[C, D]) GetAll(c echo.Context) error {
	dtos, err := h.service.GetAll(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, dtos)
}

// Update handles PUT /{resource}/:id. A payload carrying a different id than
// the path is rejected before it reaches the service.
func (h *ResourceHandler[C, D]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input D
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	if payloadID := embeddedID(input); payloadID != 0 && payloadID != id {
		return domainerrors.ErrIDMismatch
	}

	if err := h.service.Update(c.Request().Context(), id, input); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Delete handles DELETE /{resource}/:id.
func (h *ResourceHandler[C, D]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// identified is satisfied by every full-representation DTO; it exposes the
// id embedded in an update payload for the path/payload mismatch check.
type identified interface {
	ResourceID() int
}

func embeddedID(input any) int {
	if dto, ok := input.(identified); ok {
		return dto.ResourceID()
	}

	return 0
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidArgument.WithDetails("id must be a positive integer")
	}

	return id, nil
}

func queryID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidArgument.WithDetails("id must be a positive integer")
	}

	return id, nil
}

// listInput reads pagination query parameters leniently; the service layer
// clamps whatever arrives.
func listInput(c echo.Context) usecase.ListInput {
	pageNumber, _ := strconv.Atoi(c.QueryParam("pageNumber"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	return usecase.ListInput{PageNumber: pageNumber, PageSize: pageSize}
}
