package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"hotchick-orders/config"
	"hotchick-orders/models"
)

// WebhookStore posts each order as one form-encoded request to a
// third-party form endpoint, mapping the five order columns to the
// externally-defined field names from configuration.
//
// Known limitation of this backend: the target returns no structured ack,
// so a 2xx only proves the transport worked — an accepted submission and a
// silently dropped one look identical from here.
type WebhookStore struct {
	endpoint string
	fields   webhookFields
	client   *http.Client
}

type webhookFields struct {
	orderID, date, items, total, payment string
}

func NewWebhookStore(cfg config.StoreConfig) (*WebhookStore, error) {
	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("webhook backend: WEBHOOK_URL not set")
	}
	f := webhookFields{
		orderID: cfg.WebhookFieldOrderID,
		date:    cfg.WebhookFieldDate,
		items:   cfg.WebhookFieldItems,
		total:   cfg.WebhookFieldTotal,
		payment: cfg.WebhookFieldPayment,
	}
	if f.orderID == "" || f.date == "" || f.items == "" || f.total == "" || f.payment == "" {
		return nil, fmt.Errorf("webhook backend: all five WEBHOOK_FIELD_* names are required")
	}
	return &WebhookStore{endpoint: cfg.WebhookURL, fields: f, client: http.DefaultClient}, nil
}

func (s *WebhookStore) AppendOrder(ctx context.Context, order models.Order) error {
	form := url.Values{}
	form.Set(s.fields.orderID, order.ID)
	form.Set(s.fields.date, order.CreatedAt)
	form.Set(s.fields.items, order.ItemsSummary)
	form.Set(s.fields.total, fmt.Sprintf("%d", order.TotalAmount))
	form.Set(s.fields.payment, order.PaymentMethod)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: build webhook request: %v", ErrRemote, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: webhook post: %v", ErrRemote, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: webhook post: status %s", ErrRemote, resp.Status)
	}
	return nil
}
