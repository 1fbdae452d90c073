package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/employee-records/internal/domain"
	"github.com/peoplecore/employee-records/internal/logger"
)

// errorBody is the wire shape for every failed request.
type errorBody struct {
	Error string `json:"error"`
}

// respondError maps a storage or validation error onto the HTTP contract:
// NotFoundError -> 404, ValidationError -> 400, anything else -> 500 with a
// generic body so internal details never leak to the client.
func respondError(c echo.Context, err error) error {
	switch {
	case domain.IsNotFound(err):
		return c.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
	case domain.IsValidation(err):
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		logger.ErrorLog(c.Request().Context(), "%s %s failed: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

// decodeBody decodes a JSON request body into v, rejecting fields the target
// type does not declare.
func decodeBody(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.Invalid("invalid request body: %v", err)
	}
	return nil
}

// decodePatch reads a partial-update payload. The id field is immutable, so a
// patch that tries to set it is rejected before it reaches storage.
func decodePatch(r io.Reader) (domain.Patch, error) {
	var patch domain.Patch
	if err := json.NewDecoder(r).Decode(&patch); err != nil {
		return nil, domain.Invalid("invalid request body: %v", err)
	}
	if _, ok := patch["id"]; ok {
		return nil, domain.Invalid("id is immutable and cannot be patched")
	}
	return patch, nil
}
