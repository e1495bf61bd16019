package httpserver

import (
	"errors"
	"net/http"

	"github.com/adelacruz/campus-api/internal/orgs/service"
	"github.com/adelacruz/campus-api/internal/orgs/transport"
	"github.com/adelacruz/campus-api/pkg/logging"
	"github.com/labstack/echo/v4"
)

type OrganizationHTTP struct {
	Svc *service.OrganizationService
}

func (h *OrganizationHTTP) CreateOrganization(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "organization.create_organization")

	var req transport.CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_organization_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	org, err := h.Svc.CreateOrganization(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_organization_failed", "status", 400, "reason", "duplicate organization_name")
			return respondError(c, http.StatusBadRequest, "Organization already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_organization_failed", "status", 400, "reason", "validation", "error", err)
			return respondError(c, http.StatusBadRequest, err.Error())
		default:
			l.Error("create_organization_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Failed to create organization")
		}
	}

	l.Info("create_organization_success", "organization_name", org.OrganizationName)
	return respondData(c, http.StatusCreated, org)
}

func (h *OrganizationHTTP) FindOrganization(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "organization.find_organization")

	org, err := h.Svc.FindOrganization(ctx, c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("find_organization_failed", "status", 404, "reason", "organization not found")
			return respondError(c, http.StatusNotFound, "Organization not found")
		}
		l.Error("find_organization_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Failed to search organization")
	}

	return respondData(c, http.StatusOK, org)
}
