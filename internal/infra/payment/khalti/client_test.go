package khalti

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkpress/config"
	"inkpress/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.Config{
		Khalti: &config.KhaltiConfig{
			SecretKey:  "test_secret",
			BaseURL:    baseURL,
			ReturnURL:  "https://blog.example.com/payment/verify",
			WebsiteURL: "https://blog.example.com",
			Timeout:    5 * time.Second,
		},
	}

	gateway, err := NewClient(cfg, slog.Default())
	require.NoError(t, err)

	return gateway.(*Client)
}

func TestClient_InitiateCheckout(t *testing.T) {
	orderID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/epayment/initiate/", r.URL.Path)
		assert.Equal(t, "Key test_secret", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, orderID.String(), payload["purchase_order_id"])
		assert.Equal(t, float64(50000), payload["amount"])
		assert.Equal(t, "https://blog.example.com/payment/verify", payload["return_url"])

		json.NewEncoder(w).Encode(map[string]string{
			"pidx":        "pidx_abc123",
			"payment_url": "https://pay.khalti.com/?pidx=pidx_abc123",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	session, err := client.InitiateCheckout(context.Background(), &service.CheckoutRequest{
		OrderID:       orderID,
		OrderName:     "Premium Monthly",
		AmountPaisa:   50000,
		CustomerName:  "Test User",
		CustomerEmail: "test@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "pidx_abc123", session.Pidx)
	assert.Equal(t, "https://pay.khalti.com/?pidx=pidx_abc123", session.PaymentURL)
}

func TestClient_InitiateCheckout_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Amount should be greater than Rs. 1"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	session, err := client.InitiateCheckout(context.Background(), &service.CheckoutRequest{
		OrderID:     uuid.New(),
		OrderName:   "Premium Monthly",
		AmountPaisa: 50,
	})
	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "status 400")
}

func TestClient_InitiateCheckout_IncompleteSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"pidx": ""})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	session, err := client.InitiateCheckout(context.Background(), &service.CheckoutRequest{
		OrderID:     uuid.New(),
		OrderName:   "Premium Monthly",
		AmountPaisa: 50000,
	})
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestClient_LookupPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/epayment/lookup/", r.URL.Path)
		assert.Equal(t, "Key test_secret", r.Header.Get("Authorization"))

		var payload lookupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "pidx_abc123", payload.Pidx)

		json.NewEncoder(w).Encode(map[string]any{
			"pidx":         "pidx_abc123",
			"status":       "Completed",
			"total_amount": 50000,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.LookupPayment(context.Background(), "pidx_abc123")
	require.NoError(t, err)
	assert.Equal(t, "pidx_abc123", result.Pidx)
	assert.Equal(t, service.GatewayStatusCompleted, result.Status)
	assert.Equal(t, int64(50000), result.TotalAmount)
	assert.True(t, result.IsTerminal())
}

func TestClient_LookupPayment_Pending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"pidx":         "pidx_abc123",
			"status":       "Pending",
			"total_amount": 50000,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.LookupPayment(context.Background(), "pidx_abc123")
	require.NoError(t, err)
	assert.False(t, result.IsTerminal())
}

func TestNewClient_MissingConfig(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.Default())
	assert.Error(t, err)

	_, err = NewClient(&config.Config{Khalti: &config.KhaltiConfig{SecretKey: "k"}}, slog.Default())
	assert.Error(t, err)
}
