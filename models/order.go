package models

// LineItem is one cart line. Immutable once added; duplicate adds of the
// same item stay separate lines.
type LineItem struct {
	ItemName    string
	PortionNote string // "(Portion 2)" or "" for fixed-price items
	Quantity    int
	UnitPrice   int64
	LineTotal   int64
}

// Cart is the ordered line items of one active chat session. It lives in
// memory only and is threaded explicitly through the service functions.
type Cart struct {
	Items []LineItem
}

const (
	PaymentCash = "Cash"
	PaymentUPI  = "UPI"
)

// Order is an immutable snapshot of a cart at submission time. Field order
// matches the persisted row: order_id, datetime, items, total, payment_method.
type Order struct {
	ID            string
	CreatedAt     string // "2006-01-02 15:04:05", second precision
	ItemsSummary  string
	TotalAmount   int64
	PaymentMethod string
}
