package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-order-intake/src/services/order/domain"
)

func postOrder(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

const validOrderPayload = `{
	"items": [
		{"productId": "prod-001", "quantity": 2},
		{"productId": "prod-003", "quantity": 1}
	],
	"customer": {"name": "Ada Lovelace", "email": "ada@example.com"}
}`

func TestCreateOrder_Success(t *testing.T) {
	app, err := newTestApp(unreachableURL())
	require.NoError(t, err)

	resp := postOrder(t, app, validOrderPayload)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body orderEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.ID)
	assert.Equal(t, domain.StatusPending, body.Data.Status)
	assert.Equal(t, domain.Currency, body.Data.Currency)
	require.Len(t, body.Data.Items, 2)
	assert.Equal(t, "Ada Lovelace", body.Data.Customer.Name)
}

func TestCreateOrder_IgnoresClientPrice(t *testing.T) {
	app, err := newTestApp(unreachableURL())
	require.NoError(t, err)

	resp := postOrder(t, app, `{
		"items": [{"productId": "prod-002", "quantity": 2, "price": 0.01}],
		"customer": {"name": "Ada Lovelace", "email": "ada@example.com"}
	}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body orderEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Items, 1)
	assert.NotEqual(t, 0.01, body.Data.Items[0].UnitPrice, "client price must never be trusted")
	assert.Equal(t, body.Data.Items[0].Subtotal, body.Data.TotalAmount)
}

func TestCreateOrder_ValidationFailures(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		errorContains string
	}{
		{
			name:          "empty items",
			payload:       `{"items": [], "customer": {"name": "Ada", "email": "ada@example.com"}}`,
			errorContains: "at least one item",
		},
		{
			name:          "missing customer email",
			payload:       `{"items": [{"productId": "prod-001", "quantity": 1}], "customer": {"name": "Ada"}}`,
			errorContains: "email",
		},
		{
			name:          "unknown product names the id",
			payload:       `{"items": [{"productId": "prod-999", "quantity": 1}], "customer": {"name": "Ada", "email": "ada@example.com"}}`,
			errorContains: "prod-999",
		},
		{
			name:          "non-positive quantity names the id",
			payload:       `{"items": [{"productId": "prod-001", "quantity": 0}], "customer": {"name": "Ada", "email": "ada@example.com"}}`,
			errorContains: "prod-001",
		},
		{
			name:          "malformed body",
			payload:       `{not json`,
			errorContains: "Invalid request",
		},
	}

	app, err := newTestApp(unreachableURL())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postOrder(t, app, tt.payload)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body responseEnvelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Contains(t, body.Error, tt.errorContains)
		})
	}

	// Nothing got stored along the way.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	var list orderListEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Zero(t, list.Count)
	assert.Empty(t, list.Data)
}

func TestCreateOrder_TotalFromCatalogPrices(t *testing.T) {
	app, err := newTestApp(unreachableURL())
	require.NoError(t, err)

	resp := postOrder(t, app, validOrderPayload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body orderEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	var sum float64
	for _, item := range body.Data.Items {
		assert.Equal(t, domain.LineSubtotal(item.UnitPrice, item.Quantity), item.Subtotal)
		sum += item.Subtotal
	}
	assert.InDelta(t, sum, body.Data.TotalAmount, 0.001)
}

func TestGetOrder_NotFound(t *testing.T) {
	app, err := newTestApp(unreachableURL())
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/no-such-order", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body responseEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Order not found", body.Error)
}

func TestGetOrder_DownstreamUnreachable(t *testing.T) {
	app, err := newTestApp(unreachableURL())
	require.NoError(t, err)

	created := createOrderViaAPI(t, app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/"+created.ID, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body orderEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, domain.StatusPending, body.Data.Status, "status must be unchanged when the downstream is down")
}

func TestGetOrder_EnrichedFromDownstream(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"status":"shipped","updatedAt":"2025-05-01T12:00:00Z"}}`)
	}))
	defer downstream.Close()

	app, err := newTestApp(downstream.URL)
	require.NoError(t, err)

	created := createOrderViaAPI(t, app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/"+created.ID, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body orderEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "shipped", body.Data.Status)
	assert.Equal(t, created.TotalAmount, body.Data.TotalAmount)
}

func TestListOrders_CreatedOrderAppearsOnce(t *testing.T) {
	app, err := newTestApp(unreachableURL())
	require.NoError(t, err)

	created := createOrderViaAPI(t, app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list orderListEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.True(t, list.Success)
	require.Equal(t, 1, list.Count)
	require.Len(t, list.Data, 1)
	assert.Equal(t, created.ID, list.Data[0].ID)
	assert.Equal(t, created.TotalAmount, list.Data[0].TotalAmount)
	assert.Equal(t, created.Items, list.Data[0].Items)
	assert.Equal(t, created.Customer, list.Data[0].Customer)
}

func createOrderViaAPI(t *testing.T, app *fiber.App) domain.Order {
	t.Helper()
	resp := postOrder(t, app, validOrderPayload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body orderEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data
}
