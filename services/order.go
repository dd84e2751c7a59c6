package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"hotchick-orders/models"
	"hotchick-orders/store"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidPayment = errors.New("payment method must be Cash or UPI")
)

// CreateOrder snapshots the cart into an immutable order. The order id is
// "HC-" + timestamp + a random 4-digit suffix; uniqueness is best-effort
// only — two orders in the same second can collide (p ≈ 1/9000) and no
// ledger check is performed. The timestamp uses whatever clock the caller
// passes, matching the local-time rows already in production sheets.
func CreateOrder(cart *models.Cart, paymentMethod string, now time.Time) (models.Order, error) {
	if len(cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if paymentMethod != models.PaymentCash && paymentMethod != models.PaymentUPI {
		return models.Order{}, fmt.Errorf("%w: got %q", ErrInvalidPayment, paymentMethod)
	}

	return models.Order{
		ID:            fmt.Sprintf("HC-%s-%04d", now.Format("20060102150405"), 1000+rand.Intn(9000)),
		CreatedAt:     now.Format("2006-01-02 15:04:05"),
		ItemsSummary:  ItemsSummary(cart),
		TotalAmount:   CartTotal(cart),
		PaymentMethod: paymentMethod,
	}, nil
}

// ItemsSummary serializes the cart lines in insertion order. Each segment
// is "<qty> x <name> <portion-note>" — the note slot stays (as a trailing
// space) for portionless items, so existing ledger rows keep their exact
// shape — and segments join with "; ". Only the final trailing space is
// trimmed:
//
//	2 x French Fries ; 1 x Mini chicken crisper
//	3 x Fried chicken wings (3pc/5pc) (Portion 2)
func ItemsSummary(cart *models.Cart) string {
	segs := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		segs = append(segs, fmt.Sprintf("%d x %s %s", it.Quantity, it.ItemName, it.PortionNote))
	}
	return strings.TrimRight(strings.Join(segs, "; "), " ")
}

// SubmitOrder creates the order and hands it to the store. The cart is
// cleared only after a successful append; any failure leaves it intact so
// the user can retry without re-entering items. No internal retry — a
// retried append could double-submit.
func SubmitOrder(ctx context.Context, cart *models.Cart, paymentMethod string, st store.Store, now time.Time) (models.Order, error) {
	order, err := CreateOrder(cart, paymentMethod, now)
	if err != nil {
		return models.Order{}, err
	}
	if err := st.AppendOrder(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("persist order %s: %w", order.ID, err)
	}
	ClearCart(cart)
	return order, nil
}
