package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Gateway failure classes. 4xx means the gateway does not know the order;
// network errors, timeouts and 5xx mean the gateway could not answer.
var (
	ErrUnavailable = errors.New("payment gateway unavailable")
	ErrRejected    = errors.New("payment gateway rejected the request")
)

// TransactionStatus is the gateway's view of one transaction.
type TransactionStatus struct {
	OrderNumber       string
	TransactionStatus string
	GrossAmount       string
	FraudStatus       string
	ObservedAt        time.Time
}

// Client is a read-only status probe. Implementations must not mutate
// gateway state.
type Client interface {
	FetchTransactionStatus(ctx context.Context, orderNumber string) (*TransactionStatus, error)
}

type midtransClient struct {
	baseURL   string
	serverKey string
	http      *http.Client
}

// NewMidtransClient builds a client for the Midtrans status API. The
// server key stays server-side; it is sent as basic auth with an empty
// password, which the wire encodes as base64(serverKey + ":").
func NewMidtransClient(baseURL, serverKey string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &midtransClient{
		baseURL:   baseURL,
		serverKey: serverKey,
		http:      &http.Client{Timeout: timeout},
	}
}

type midtransStatusResponse struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	GrossAmount       string `json:"gross_amount"`
	FraudStatus       string `json:"fraud_status"`
	TransactionTime   string `json:"transaction_time"`
	SettlementTime    string `json:"settlement_time"`
	StatusMessage     string `json:"status_message"`
}

func (m *midtransClient) FetchTransactionStatus(ctx context.Context, orderNumber string) (*TransactionStatus, error) {
	url := fmt.Sprintf("%s/v2/%s/status", m.baseURL, orderNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(m.serverKey, "")

	resp, err := m.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	var body midtransStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	return &TransactionStatus{
		OrderNumber:       body.OrderID,
		TransactionStatus: body.TransactionStatus,
		GrossAmount:       body.GrossAmount,
		FraudStatus:       body.FraudStatus,
		ObservedAt:        observedAt(body),
	}, nil
}

// observedAt picks the settlement time when present, then the transaction
// time, then now. Midtrans timestamps are WIB wall-clock strings.
func observedAt(body midtransStatusResponse) time.Time {
	for _, raw := range []string{body.SettlementTime, body.TransactionTime} {
		if raw == "" {
			continue
		}
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", raw, midtransLocation); err == nil {
			return t
		}
	}
	return time.Now()
}

var midtransLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.UTC
	}
	return loc
}()
