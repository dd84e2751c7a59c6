package store

import (
	"context"

	"hotchick-orders/models"
)

// SimulatedStore never writes anywhere. It always acknowledges and hands the
// would-be row to the notify callback so the caller can show it to the user.
// Used when the backing sheet is public/read-only and no write grant exists.
type SimulatedStore struct {
	notify func(row []string)
}

func NewSimulatedStore(notify func(row []string)) *SimulatedStore {
	return &SimulatedStore{notify: notify}
}

func (s *SimulatedStore) AppendOrder(_ context.Context, order models.Order) error {
	if s.notify != nil {
		s.notify(OrderRow(order))
	}
	return nil
}
