package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vidtube/pkg/config"
)

// Verifier asks the payment gateway whether a payment has been captured.
// It only reads status; order creation and settlement happen on the
// client side against the gateway directly.
type Verifier struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{
		baseURL:   cfg.PaymentAPIURL,
		keyID:     cfg.PaymentKeyID,
		keySecret: cfg.PaymentKeySecret,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type paymentStatus struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// IsCaptured reports whether the payment exists, belongs to the given
// order and has reached the captured state.
func (v *Verifier) IsCaptured(ctx context.Context, paymentID, orderID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/payments/%s", v.baseURL, paymentID), nil)
	if err != nil {
		return false, fmt.Errorf("failed to build payment request: %w", err)
	}
	req.SetBasicAuth(v.keyID, v.keySecret)

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var status paymentStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false, fmt.Errorf("failed to decode payment status: %w", err)
	}

	return status.Status == "captured" && status.OrderID == orderID, nil
}
