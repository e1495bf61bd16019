package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	UserHandler    *UserHTTP
	ProductHandler *ProductHTTP
	OrderHandler   *OrderHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Welcome to the API!") })

	users := e.Group("/users")
	users.POST("", d.UserHandler.CreateUser)
	users.GET("", d.UserHandler.GetUsers)
	users.GET("/:email", d.UserHandler.GetUser)
	users.PUT("/:email", d.UserHandler.UpdateUser)
	users.DELETE("/:email", d.UserHandler.DeleteUser)

	products := e.Group("/products")
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	orders := e.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)
}
