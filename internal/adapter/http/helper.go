package http

import (
	"errors"
	"net/http"
	"strings"

	analysisdomain "dealflow-backend/internal/domain/analysis"
	dealdomain "dealflow-backend/internal/domain/deal"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

// jsonError maps domain errors onto HTTP statuses. Anything unrecognized is
// a 500 with a generic message so internals don't leak.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dealdomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "deal not found"})
	case errors.Is(err, dealdomain.ErrDealExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, dealdomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, dealdomain.ErrUnknownStatus):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, dealdomain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, analysisdomain.ErrInsufficientData):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, analysisdomain.ErrRehabBudgetMismatch):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
