package httpserver

import (
	"errors"
	"net/http"

	"github.com/adelacruz/campus-api/internal/shop/models"
	"github.com/adelacruz/campus-api/internal/shop/service"
	"github.com/adelacruz/campus-api/internal/shop/transport"
	"github.com/adelacruz/campus-api/pkg/logging"
	"github.com/labstack/echo/v4"
)

type UserHTTP struct {
	Svc    *service.UserService
	Events Publisher
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.CreateUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			l.Warn("create_user_failed", "status", 400, "reason", "invalid email format")
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid email format")
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_user_failed", "status", 400, "reason", "user already exists")
			return echo.NewHTTPError(http.StatusBadRequest, "User already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_user_failed", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("create_user_failed", "status", 500, "reason", "cannot save user", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot save user")
		}
	}

	h.Events.publish(c, "user_events", user.Email, map[string]any{
		"type":  "user_created",
		"email": user.Email,
	})

	l.Info("create_user_success", "email", user.Email)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	users, err := h.Svc.GetUsers(ctx)
	if err != nil {
		l.Error("get_users_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users")
	}

	// an empty list is a valid success, never a 404
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	user, err := h.Svc.GetUser(ctx, c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_user_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("get_user_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get user")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_user_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.UpdateUser(ctx, c.Param("email"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			l.Warn("update_user_failed", "status", 400, "reason", "invalid email format")
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid email format")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_user_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		default:
			l.Error("update_user_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Server error during update")
		}
	}

	l.Info("update_user_success", "email", user.Email)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	email, err := h.Svc.DeleteUser(ctx, c.Param("email"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			l.Warn("delete_user_failed", "status", 400, "reason", "invalid email format")
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid email format")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("delete_user_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		default:
			l.Error("delete_user_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Server error during deletion")
		}
	}

	h.Events.publish(c, "user_events", email, map[string]any{
		"type":  "user_deleted",
		"email": email,
	})

	l.Info("delete_user_success", "email", email)
	return c.JSON(http.StatusOK, map[string]any{
		"message": "User deleted successfully",
		"email":   email,
	})
}
