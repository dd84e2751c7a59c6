package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCSVLedger_FetchAll(t *testing.T) {
	const export = "order_id,datetime,items,total,payment_method\n" +
		"HC-20250809130405-1234,2025-08-09 13:04:05,2 x French Fries ,140,Cash\n" +
		"HC-20250809130506-9999,2025-08-09 13:05:06,\"3 x Fried chicken wings (3pc/5pc) (Portion 2)\",390,UPI\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, export)
	}))
	defer srv.Close()

	rows, err := NewCSVLedger(srv.URL).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3 (header + 2 orders)", len(rows))
	}
	if rows[1][0] != "HC-20250809130405-1234" {
		t.Errorf("rows[1][0] = %q", rows[1][0])
	}
	if rows[2][3] != "390" || rows[2][4] != "UPI" {
		t.Errorf("rows[2] = %v", rows[2])
	}
}

func TestCSVLedger_HTTPErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := NewCSVLedger(srv.URL).FetchAll(context.Background()); !errors.Is(err, ErrFetch) {
		t.Errorf("err = %v, want ErrFetch", err)
	}
}

func TestCSVLedger_ParseErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "a,\"unterminated\nquote")
	}))
	defer srv.Close()

	if _, err := NewCSVLedger(srv.URL).FetchAll(context.Background()); !errors.Is(err, ErrFetch) {
		t.Errorf("err = %v, want ErrFetch", err)
	}
}
