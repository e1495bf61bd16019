package httpserver

import (
	"errors"
	"net/http"

	"github.com/adelacruz/campus-api/internal/orgs/service"
	"github.com/adelacruz/campus-api/internal/orgs/transport"
	"github.com/adelacruz/campus-api/pkg/logging"
	"github.com/labstack/echo/v4"
)

type StudentHTTP struct {
	Svc *service.StudentService
}

func (h *StudentHTTP) CreateStudent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "student.create_student")

	var req transport.CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_student_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	student, err := h.Svc.CreateStudent(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_student_failed", "status", 400, "reason", "duplicate student_number")
			return respondError(c, http.StatusBadRequest, "Student already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_student_failed", "status", 400, "reason", "validation", "error", err)
			return respondError(c, http.StatusBadRequest, err.Error())
		default:
			l.Error("create_student_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Failed to create student")
		}
	}

	l.Info("create_student_success", "student_number", student.StudentNumber)
	return respondData(c, http.StatusCreated, student)
}

func (h *StudentHTTP) GetStudent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "student.get_student")

	student, err := h.Svc.GetStudent(ctx, c.Param("studentNumber"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_student_failed", "status", 404, "reason", "student not found")
			return respondError(c, http.StatusNotFound, "Student not found")
		}
		l.Error("get_student_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Database error")
	}

	return respondData(c, http.StatusOK, student)
}

func (h *StudentHTTP) UpdateStudent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "student.update_student")

	var req transport.UpdateStudentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_student_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	student, err := h.Svc.UpdateStudent(ctx, c.Param("studentNumber"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_student_failed", "status", 404, "reason", "student not found")
			return respondError(c, http.StatusNotFound, "Student not found")
		}
		l.Error("update_student_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Failed to update student")
	}

	l.Info("update_student_success", "student_number", student.StudentNumber)
	return respondData(c, http.StatusOK, student)
}

func (h *StudentHTTP) DeleteStudent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "student.delete_student")

	studentNumber, err := h.Svc.DeleteStudent(ctx, c.Param("studentNumber"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_student_failed", "status", 404, "reason", "student not found")
			return respondError(c, http.StatusNotFound, "Student not found")
		}
		l.Error("delete_student_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Failed to delete student")
	}

	l.Info("delete_student_success", "student_number", studentNumber)
	return respondData(c, http.StatusOK, map[string]any{"student_number": studentNumber})
}
