package httpserver

import (
	"errors"
	"net/http"

	"github.com/adelacruz/campus-api/internal/shop/service"
	"github.com/adelacruz/campus-api/internal/shop/transport"
	"github.com/adelacruz/campus-api/pkg/logging"
	"github.com/labstack/echo/v4"
)

type OrderHTTP struct {
	Svc    *service.OrderService
	Events Publisher
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("create_order_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		case errors.Is(err, service.ErrInsufficientStock):
			l.Warn("create_order_failed", "status", 400, "reason", "insufficient product quantity")
			return echo.NewHTTPError(http.StatusBadRequest, "Insufficient product quantity")
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_order_failed", "status", 400, "reason", "duplicate transactionID")
			return echo.NewHTTPError(http.StatusBadRequest, "Order transaction already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_order_failed", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("create_order_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot save order")
		}
	}

	h.Events.publish(c, "order_events", order.TransactionID, map[string]any{
		"type":          "order_created",
		"transactionID": order.TransactionID,
		"productID":     order.ProductID,
		"quantity":      order.OrderQuantity,
	})

	l.Info("create_order_success", "transaction_id", order.TransactionID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	order, err := h.Svc.GetOrder(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_order_failed", "status", 404, "reason", "transaction not found")
			return echo.NewHTTPError(http.StatusNotFound, "Transaction not found")
		}
		l.Error("get_order_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get order")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order")

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			l.Warn("update_order_failed", "status", 400, "reason", "invalid orderStatus value")
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid orderStatus value")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_order_failed", "status", 404, "reason", "transaction not found")
			return echo.NewHTTPError(http.StatusNotFound, "Order transaction not found")
		default:
			l.Error("update_order_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Server error during order update")
		}
	}

	h.Events.publish(c, "order_events", order.TransactionID, map[string]any{
		"type":          "order_status_updated",
		"transactionID": order.TransactionID,
		"orderStatus":   order.OrderStatus,
	})

	l.Info("update_order_success", "transaction_id", order.TransactionID)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	transactionID, err := h.Svc.DeleteOrder(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_order_failed", "status", 404, "reason", "transaction not found")
			return echo.NewHTTPError(http.StatusNotFound, "Order transaction not found")
		}
		l.Error("delete_order_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error during order deletion")
	}

	l.Info("delete_order_success", "transaction_id", transactionID)
	return c.JSON(http.StatusOK, map[string]any{
		"message":       "Order transaction deleted successfully",
		"transactionID": transactionID,
	})
}
