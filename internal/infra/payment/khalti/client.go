// Package khalti implements the PaymentGateway interface against the
// Khalti ePayment API (initiate and lookup).
package khalti

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"inkpress/config"
	"inkpress/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Client talks to the Khalti ePayment API over HTTP.
type Client struct {
	secretKey  string
	baseURL    string
	returnURL  string
	websiteURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Khalti gateway client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	kc := cfg.Khalti
	if kc == nil || kc.SecretKey == "" || kc.BaseURL == "" {
		return nil, errors.New("khalti secret key and base URL must be provided")
	}

	timeout := kc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		secretKey:  kc.SecretKey,
		baseURL:    strings.TrimRight(kc.BaseURL, "/"),
		returnURL:  kc.ReturnURL,
		websiteURL: kc.WebsiteURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type initiateRequest struct {
	ReturnURL         string `json:"return_url"`
	WebsiteURL        string `json:"website_url"`
	Amount            int64  `json:"amount"` // In paisa
	PurchaseOrderID   string `json:"purchase_order_id"`
	PurchaseOrderName string `json:"purchase_order_name"`
	CustomerInfo      struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"customer_info"`
}

type initiateResponse struct {
	Pidx       string `json:"pidx"`
	PaymentURL string `json:"payment_url"`
}

type lookupRequest struct {
	Pidx string `json:"pidx"`
}

type lookupResponse struct {
	Pidx        string `json:"pidx"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`
}

// InitiateCheckout opens a hosted checkout session at the gateway.
func (c *Client) InitiateCheckout(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutSession, error) {
	payload := initiateRequest{
		ReturnURL:         c.returnURL,
		WebsiteURL:        c.websiteURL,
		Amount:            req.AmountPaisa,
		PurchaseOrderID:   req.OrderID.String(),
		PurchaseOrderName: req.OrderName,
	}
	payload.CustomerInfo.Name = req.CustomerName
	payload.CustomerInfo.Email = req.CustomerEmail

	var resp initiateResponse
	if err := c.post(ctx, "/epayment/initiate/", payload, &resp); err != nil {
		return nil, err
	}

	if resp.Pidx == "" || resp.PaymentURL == "" {
		return nil, errors.New("gateway returned an incomplete checkout session")
	}

	c.logger.Info("[Khalti] Checkout initiated",
		slog.String("order_id", req.OrderID.String()),
		slog.String("pidx", resp.Pidx),
	)

	return &service.CheckoutSession{
		Pidx:       resp.Pidx,
		PaymentURL: resp.PaymentURL,
	}, nil
}

// LookupPayment queries the gateway for the state of a transaction.
func (c *Client) LookupPayment(ctx context.Context, pidx string) (*service.LookupResult, error) {
	var resp lookupResponse
	if err := c.post(ctx, "/epayment/lookup/", lookupRequest{Pidx: pidx}, &resp); err != nil {
		return nil, err
	}

	c.logger.Info("[Khalti] Lookup finished",
		slog.String("pidx", pidx),
		slog.String("status", resp.Status),
	)

	return &service.LookupResult{
		Pidx:        resp.Pidx,
		Status:      resp.Status,
		TotalAmount: resp.TotalAmount,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("gateway returned status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode gateway response")
	}

	return nil
}
