package httpgw

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avorobev/payment-router/internal/app/config"
	"github.com/avorobev/payment-router/internal/app/entity"
)

func testOrder(t *testing.T) *entity.Order {
	t.Helper()

	order, err := entity.NewOrder(entity.MethodCreditCard, []entity.Item{
		{Name: "keyboard", UnitPrice: decimal.NewFromFloat(75.50), Quantity: 2},
	})
	require.NoError(t, err)

	return order
}

func newGateway(t *testing.T, address string) *Gateway {
	t.Helper()

	gateway, err := New(config.ProviderConfig{
		Name:    "AlphaPay",
		Address: address,
		Methods: []string{"CREDIT_CARD", "CASH"},
	}, time.Second)
	require.NoError(t, err)

	return gateway
}

func TestNewGateway(t *testing.T) {
	gateway := newGateway(t, "http://localhost:9001")

	assert.Equal(t, "AlphaPay", gateway.Name())
	assert.True(t, gateway.SupportsMethod(entity.MethodCreditCard))
	assert.True(t, gateway.SupportsMethod(entity.MethodCash))
	assert.False(t, gateway.SupportsMethod(entity.MethodBankTransfer))

	_, err := New(config.ProviderConfig{
		Name:    "BrokenPay",
		Address: "http://localhost:9002",
		Methods: []string{"BARTER"},
	}, time.Second)
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestCommission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/quotes", r.URL.Path)

		var request quoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "CREDIT_CARD", request.PaymentMethod)
		assert.True(t, request.Amount.Equal(decimal.NewFromInt(151)))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(quoteResponse{Commission: decimal.NewFromFloat(4.53)})
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	commission, err := gateway.Commission(context.Background(), testOrder(t))
	require.NoError(t, err)
	assert.True(t, commission.Equal(decimal.NewFromFloat(4.53)))
}

func TestCommissionProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	_, err := gateway.Commission(context.Background(), testOrder(t))
	require.ErrorIs(t, err, ErrUnexpectedProviderStatus)
}

func TestCommissionProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gateway := newGateway(t, server.URL)

	_, err := gateway.Commission(context.Background(), testOrder(t))
	require.Error(t, err)
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)

		var request createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Len(t, request.Items, 1)
		assert.Equal(t, "keyboard", request.Items[0].Name)
		assert.Equal(t, 2, request.Items[0].Quantity)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gatewayResponse{
			Success:   true,
			OrderRef:  "ap-20240517-0001",
			Amount:    request.Amount,
			Status:    "REGISTERED",
			Timestamp: time.Now(),
		})
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	response, err := gateway.CreateOrder(context.Background(), testOrder(t))
	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "ap-20240517-0001", response.OrderRef)
	assert.Equal(t, "REGISTERED", response.Status)
}

func TestCancelAndPayOrder(t *testing.T) {
	var gotPaths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotPaths = append(gotPaths, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gatewayResponse{Success: true, OrderRef: "ap-1"})
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	response, err := gateway.CancelOrder(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.True(t, response.Success)

	response, err = gateway.PayOrder(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.True(t, response.Success)

	assert.Equal(t, []string{"/api/orders/ap-1/cancel", "/api/orders/ap-1/pay"}, gotPaths)
}

func TestGetAndListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/orders/ap-1":
			json.NewEncoder(w).Encode(gatewayResponse{Success: true, OrderRef: "ap-1", Status: "PAID"})
		case "/api/orders":
			json.NewEncoder(w).Encode([]gatewayResponse{
				{Success: true, OrderRef: "ap-1"},
				{Success: true, OrderRef: "ap-2"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	response, err := gateway.GetOrder(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, "PAID", response.Status)

	responses, err := gateway.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "ap-2", responses[1].OrderRef)
}
