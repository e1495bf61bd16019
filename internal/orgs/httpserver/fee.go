package httpserver

import (
	"errors"
	"net/http"

	"github.com/adelacruz/campus-api/internal/orgs/service"
	"github.com/adelacruz/campus-api/internal/orgs/transport"
	"github.com/adelacruz/campus-api/pkg/logging"
	"github.com/labstack/echo/v4"
)

type FeeHTTP struct {
	Svc *service.FeeService
}

func (h *FeeHTTP) CreateFee(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "fee.create_fee")

	var req transport.CreateFeeRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_fee_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	transactionID, err := h.Svc.CreateFee(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			l.Warn("create_fee_failed", "status", 404, "reason", "student not found")
			return respondError(c, http.StatusNotFound, "Student not found")
		case errors.Is(err, service.ErrOrganizationNotFound):
			l.Warn("create_fee_failed", "status", 404, "reason", "organization not found")
			return respondError(c, http.StatusNotFound, "Organization not found")
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_fee_failed", "status", 409, "reason", "duplicate fee")
			return respondError(c, http.StatusConflict,
				"Fee already exists for this student, organization, academic year, semester, and type")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_fee_failed", "status", 400, "reason", "validation", "error", err)
			return respondError(c, http.StatusBadRequest, err.Error())
		default:
			l.Error("create_fee_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Failed to create fee")
		}
	}

	l.Info("create_fee_success", "transaction_id", transactionID)
	return c.JSON(http.StatusCreated, map[string]any{
		"success":       true,
		"transactionId": transactionID,
	})
}
