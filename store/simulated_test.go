package store

import (
	"context"
	"testing"
)

func TestSimulatedStore_NotifiesRowInColumnOrder(t *testing.T) {
	var got []string
	st := NewSimulatedStore(func(row []string) { got = row })

	if err := st.AppendOrder(context.Background(), testOrder); err != nil {
		t.Fatalf("AppendOrder: %v", err)
	}
	want := []string{
		"HC-20250809130405-1234",
		"2025-08-09 13:04:05",
		"2 x French Fries ; 1 x Mini chicken crisper",
		"219",
		"Cash",
	}
	if len(got) != len(want) {
		t.Fatalf("row has %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSimulatedStore_NilNotify(t *testing.T) {
	st := NewSimulatedStore(nil)
	if err := st.AppendOrder(context.Background(), testOrder); err != nil {
		t.Errorf("AppendOrder: %v", err)
	}
}
