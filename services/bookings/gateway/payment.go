package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
)

// collector describes one mobile money provider's endpoints on the
// payment aggregator. Adding a provider means adding a collector, not
// another branch in the charge path.
type collector interface {
	Provider() models.PaymentProvider
	ChargePath() string
	RefundPath() string
}

type mtnCollector struct{}

func (mtnCollector) Provider() models.PaymentProvider { return models.ProviderMTN }
func (mtnCollector) ChargePath() string               { return "/v1/momo/collections" }
func (mtnCollector) RefundPath() string               { return "/v1/momo/refunds" }

type airtelCollector struct{}

func (airtelCollector) Provider() models.PaymentProvider { return models.ProviderAirtel }
func (airtelCollector) ChargePath() string               { return "/v1/airtel/collections" }
func (airtelCollector) RefundPath() string               { return "/v1/airtel/refunds" }

// PaymentGW charges and refunds mobile money through the aggregator's
// HTTP API.
type PaymentGW struct {
	cfg        *models.Config
	httpClient *http.Client
	collectors map[models.PaymentProvider]collector
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(cfg *models.Config) *PaymentGW {
	timeout := time.Duration(cfg.Payment.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	collectors := make(map[models.PaymentProvider]collector)
	for _, c := range []collector{mtnCollector{}, airtelCollector{}} {
		collectors[c.Provider()] = c
	}

	return &PaymentGW{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		collectors: collectors,
	}
}

// Charge collects the amount from the passenger's mobile money account.
// The call blocks until the aggregator reports a terminal status.
func (g *PaymentGW) Charge(ctx context.Context, req models.ChargeRequest) (*models.PaymentResult, error) {
	c, ok := g.collectors[req.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported payment provider: %s", req.Provider)
	}

	body := map[string]interface{}{
		"msisdn":      req.Phone,
		"amount":      req.Amount,
		"currency":    "UGX",
		"external_id": req.BookingID.String(),
	}

	var result models.PaymentResult
	if err := g.post(ctx, c.ChargePath(), req.BookingID.String(), body, &result); err != nil {
		return nil, err
	}

	logger.Info("Charge completed",
		logger.String("booking_id", req.BookingID.String()),
		logger.String("provider", string(req.Provider)),
		logger.String("reference_id", result.ReferenceID),
		logger.String("status", string(result.Status)))

	return &result, nil
}

// Refund returns a settled charge to the payer
func (g *PaymentGW) Refund(ctx context.Context, referenceID string, amount float64) error {
	// Refunds route by reference prefix on the aggregator side, any
	// collector's refund path accepts them. Use MTN's as the canonical
	// one.
	c := g.collectors[models.ProviderMTN]

	body := map[string]interface{}{
		"reference_id": referenceID,
		"amount":       amount,
		"currency":     "UGX",
	}

	var result models.PaymentResult
	if err := g.post(ctx, c.RefundPath(), referenceID, body, &result); err != nil {
		return err
	}

	logger.Info("Refund issued",
		logger.String("reference_id", referenceID),
		logger.Float64("amount", amount))

	return nil
}

func (g *PaymentGW) post(ctx context.Context, path, idempotencyKey string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Payment.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.Payment.APIKey)
	req.Header.Set("X-Idempotency-Key", idempotencyKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: payment gateway unreachable: %v", models.ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read payment response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode payment response: %w", err)
	}

	return nil
}
