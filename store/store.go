// Package store persists finalized orders and reads back the order ledger.
// One backend is selected from configuration at startup; the rest of the
// program only sees the Store and Ledger interfaces.
package store

import (
	"context"
	"errors"
	"fmt"

	"hotchick-orders/config"
	"hotchick-orders/models"
)

// Error kinds for classifying persistence failures with errors.Is.
var (
	ErrAuth   = errors.New("store authentication failed")
	ErrRemote = errors.New("store backend error")
	ErrFetch  = errors.New("ledger fetch failed")
)

// Store appends exactly one row per order:
// order_id, datetime, items, total, payment_method.
type Store interface {
	AppendOrder(ctx context.Context, order models.Order) error
}

// Ledger is the read path: all historical order rows, raw, no paging.
type Ledger interface {
	FetchAll(ctx context.Context) ([][]string, error)
}

// FromConfig builds the configured store and its matching ledger. notify is
// invoked by the simulated backend with each would-be row; other backends
// ignore it. The ledger may be nil when the backend has no read path
// configured (simulated/webhook without LEDGER_CSV_URL).
func FromConfig(ctx context.Context, cfg config.StoreConfig, notify func(row []string)) (Store, Ledger, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		st := NewPostgresStore()
		return st, st, nil
	case config.BackendSheet:
		st, err := NewSheetStore(ctx, cfg.SheetID, cfg.SheetCredentials)
		if err != nil {
			return nil, nil, err
		}
		return st, st, nil
	case config.BackendSimulated:
		return NewSimulatedStore(notify), csvLedgerOrNil(cfg.LedgerCSVURL), nil
	case config.BackendWebhook:
		st, err := NewWebhookStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		return st, csvLedgerOrNil(cfg.LedgerCSVURL), nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func csvLedgerOrNil(url string) Ledger {
	if url == "" {
		return nil
	}
	return NewCSVLedger(url)
}

// OrderRow lays an order out in ledger column order.
func OrderRow(o models.Order) []string {
	return []string{o.ID, o.CreatedAt, o.ItemsSummary, fmt.Sprintf("%d", o.TotalAmount), o.PaymentMethod}
}
