package httpserver

import (
	"errors"
	"net/http"

	"github.com/adelacruz/campus-api/internal/orgs/models"
	"github.com/adelacruz/campus-api/internal/orgs/service"
	"github.com/adelacruz/campus-api/internal/orgs/transport"
	"github.com/adelacruz/campus-api/pkg/logging"
	"github.com/labstack/echo/v4"
)

type MembershipHTTP struct {
	Svc *service.MembershipService
}

func (h *MembershipHTTP) CreateMembership(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "membership.create_membership")

	var req transport.CreateMembershipRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_membership_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	m, err := h.Svc.CreateMembership(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			l.Warn("create_membership_failed", "status", 404, "reason", "student not found")
			return respondError(c, http.StatusNotFound, "Student not found")
		case errors.Is(err, service.ErrOrganizationNotFound):
			l.Warn("create_membership_failed", "status", 404, "reason", "organization not found")
			return respondError(c, http.StatusNotFound, "Organization not found")
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_membership_failed", "status", 400, "reason", "membership already exists")
			return respondError(c, http.StatusBadRequest, "Membership already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_membership_failed", "status", 400, "reason", "validation", "error", err)
			return respondError(c, http.StatusBadRequest, err.Error())
		default:
			l.Error("create_membership_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Failed to create Membership")
		}
	}

	l.Info("create_membership_success",
		"student_number", m.StudentNumber, "organization_name", m.OrganizationName)
	return respondData(c, http.StatusCreated, m)
}

func (h *MembershipHTTP) GetMemberships(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "membership.get_memberships")

	memberships, err := h.Svc.GetMemberships(ctx, c.Param("studentNumber"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			l.Warn("get_memberships_failed", "status", 404, "reason", "student not found")
			return respondError(c, http.StatusNotFound, "Student not found")
		}
		l.Error("get_memberships_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Database error")
	}

	if memberships == nil {
		memberships = []models.Membership{}
	}
	return respondData(c, http.StatusOK, memberships)
}
