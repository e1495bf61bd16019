package httpserver

import (
	"errors"
	"net/http"

	"github.com/adelacruz/campus-api/internal/shop/service"
	"github.com/adelacruz/campus-api/internal/shop/transport"
	"github.com/adelacruz/campus-api/pkg/logging"
	"github.com/labstack/echo/v4"
)

type ProductHTTP struct {
	Svc    *service.ProductService
	Events Publisher
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_product_failed", "status", 400, "reason", "duplicate productID")
			return echo.NewHTTPError(http.StatusBadRequest, "Product already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_product_failed", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("create_product_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot save product")
		}
	}

	h.Events.publish(c, "product_events", prod.ProductID, map[string]any{
		"type":      "product_created",
		"productID": prod.ProductID,
		"name":      prod.ProductName,
	})

	l.Info("create_product_success", "product_id", prod.ProductID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	prod, err := h.Svc.GetProduct(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.UpdateQuantity(ctx, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			l.Warn("update_product_failed", "status", 400, "reason", "invalid or missing productQuantity")
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid or missing productQuantity")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		default:
			l.Error("update_product_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Server error during product update")
		}
	}

	h.Events.publish(c, "product_events", prod.ProductID, map[string]any{
		"type":      "product_updated",
		"productID": prod.ProductID,
		"quantity":  prod.ProductQuantity,
	})

	l.Info("update_product_success", "product_id", prod.ProductID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	productID, err := h.Svc.DeleteProduct(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		l.Error("delete_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error during product deletion")
	}

	h.Events.publish(c, "product_events", productID, map[string]any{
		"type":      "product_deleted",
		"productID": productID,
	})

	l.Info("delete_product_success", "product_id", productID)
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Product deleted successfully",
		"productID": productID,
	})
}
