package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adelacruz/campus-api/internal/shop/models"
	"github.com/adelacruz/campus-api/internal/shop/transport"
)

func orderPayload(transactionID, productID string, qty int) transport.CreateOrderRequest {
	return transport.CreateOrderRequest{
		TransactionID:      transactionID,
		ProductID:          productID,
		OrderQuantity:      qty,
		ProductDescription: "test_description",
		Email:              "buyer@example.com",
	}
}

func productQuantity(t *testing.T, env *testEnv, productID string) int {
	t.Helper()
	var prod models.Product
	require.NoError(t, env.DB.Where("product_id = ?", productID).First(&prod).Error)
	return prod.ProductQuantity
}

func TestCreateOrderProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "GHOST", 1))
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusNotFound)

	var count int64
	env.DB.Model(&models.OrderTransaction{}).Count(&count)
	require.Zero(t, count)
}

func TestCreateOrderInsufficientQuantity(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "P1", 2)

	_, c := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "P1", 3))
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusBadRequest)

	// the failed order must not touch the stock
	require.Equal(t, 2, productQuantity(t, env, "P1"))

	var count int64
	env.DB.Model(&models.OrderTransaction{}).Count(&count)
	require.Zero(t, count)
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "P1", 5)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "P1", 3))
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.OrderTransaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "T1", resp.TransactionID)
	require.Equal(t, 3, resp.OrderQuantity)
	require.Equal(t, models.OrderStatusPending, resp.OrderStatus)
	require.False(t, resp.DateOrdered.IsZero())

	// remaining + ordered == pre-order quantity
	require.Equal(t, 2, productQuantity(t, env, "P1"))
}

func TestCreateOrderCannotOversellLastUnit(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "P1", 1)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "P1", 1))
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// the second taker of the same unit loses at the conditional update
	_, c2 := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T2", "P1", 1))
	requireHTTPError(t, env.Orders.CreateOrder(c2), http.StatusBadRequest)

	require.Equal(t, 0, productQuantity(t, env, "P1"))

	var count int64
	env.DB.Model(&models.OrderTransaction{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestCreateOrderRollsBackStockOnInsertFailure(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "P1", 5)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "P1", 2))
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// duplicate transactionID fails the insert after the decrement;
	// the compensating write must restore the stock
	_, c2 := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "P1", 2))
	requireHTTPError(t, env.Orders.CreateOrder(c2), http.StatusBadRequest)

	require.Equal(t, 3, productQuantity(t, env, "P1"))
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "P1", 5)

	_, c := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "P1", 0))
	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusBadRequest)
	require.Equal(t, 5, productQuantity(t, env, "P1"))
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "P1", 5)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "P1", 1))
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// out-of-range status
	_, c2 := env.doJSONRequest(http.MethodPut, "/orders/T1", transport.UpdateOrderRequest{OrderStatus: intPtr(5)})
	c2.SetParamNames("id")
	c2.SetParamValues("T1")
	requireHTTPError(t, env.Orders.UpdateOrder(c2), http.StatusBadRequest)

	// missing status
	_, c3 := env.doJSONRequest(http.MethodPut, "/orders/T1", transport.UpdateOrderRequest{})
	c3.SetParamNames("id")
	c3.SetParamValues("T1")
	requireHTTPError(t, env.Orders.UpdateOrder(c3), http.StatusBadRequest)

	// valid status is written through
	rec4, c4 := env.doJSONRequest(http.MethodPut, "/orders/T1", transport.UpdateOrderRequest{OrderStatus: intPtr(2)})
	c4.SetParamNames("id")
	c4.SetParamValues("T1")
	require.NoError(t, env.Orders.UpdateOrder(c4))
	require.Equal(t, http.StatusOK, rec4.Code)

	var stored models.OrderTransaction
	require.NoError(t, env.DB.Where("transaction_id = ?", "T1").First(&stored).Error)
	require.Equal(t, models.OrderStatusCompleted, stored.OrderStatus)
}

func TestUpdateOrderNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPut, "/orders/GHOST", transport.UpdateOrderRequest{OrderStatus: intPtr(1)})
	c.SetParamNames("id")
	c.SetParamValues("GHOST")
	requireHTTPError(t, env.Orders.UpdateOrder(c), http.StatusNotFound)
}

func TestDeleteOrder(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "P1", 5)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders", orderPayload("T1", "P1", 1))
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec2, c2 := env.doJSONRequest(http.MethodDelete, "/orders/T1", nil)
	c2.SetParamNames("id")
	c2.SetParamValues("T1")
	require.NoError(t, env.Orders.DeleteOrder(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &body))
	require.Equal(t, "Order transaction deleted successfully", body["message"])
	require.Equal(t, "T1", body["transactionID"])

	_, c3 := env.doJSONRequest(http.MethodGet, "/orders/T1", nil)
	c3.SetParamNames("id")
	c3.SetParamValues("T1")
	requireHTTPError(t, env.Orders.GetOrder(c3), http.StatusNotFound)
}
