package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/employee-records/internal/domain"
)

type EmployeeHandler struct {
	store domain.Storage
}

func NewEmployeeHandler(store domain.Storage) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	employees, err := h.store.ListEmployees(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	emp, err := h.store.GetEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req domain.Employee
	if err := decodeBody(c.Request().Body, &req); err != nil {
		return respondError(c, err)
	}
	if req.ID != "" {
		return respondError(c, domain.Invalid("id is assigned by the server"))
	}

	created, err := h.store.CreateEmployee(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *EmployeeHandler) UpdateHandler(c echo.Context) error {
	patch, err := decodePatch(c.Request().Body)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := h.store.UpdateEmployee(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	if err := h.store.DeleteEmployee(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
