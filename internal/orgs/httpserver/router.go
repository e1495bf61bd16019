package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	StudentHandler      *StudentHTTP
	OrganizationHandler *OrganizationHTTP
	MembershipHandler   *MembershipHTTP
	FeeHandler          *FeeHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Student Management System API") })

	students := e.Group("/students")
	students.POST("", d.StudentHandler.CreateStudent)
	students.GET("/:studentNumber", d.StudentHandler.GetStudent)
	students.PUT("/:studentNumber", d.StudentHandler.UpdateStudent)
	students.DELETE("/:studentNumber", d.StudentHandler.DeleteStudent)

	orgs := e.Group("/organizations")
	orgs.POST("", d.OrganizationHandler.CreateOrganization)
	orgs.GET("/:name", d.OrganizationHandler.FindOrganization)

	memberships := e.Group("/memberships")
	memberships.POST("", d.MembershipHandler.CreateMembership)
	memberships.GET("/:studentNumber", d.MembershipHandler.GetMemberships)

	fees := e.Group("/fees")
	fees.POST("", d.FeeHandler.CreateFee)
}
