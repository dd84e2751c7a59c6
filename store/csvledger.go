package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
)

// CSVLedger reads the whole order history from a public CSV export URL.
// Every fetch re-reads in full; no caching, no paging.
type CSVLedger struct {
	url    string
	client *http.Client
}

func NewCSVLedger(url string) *CSVLedger {
	return &CSVLedger{url: url, client: http.DefaultClient}
}

func (l *CSVLedger) FetchAll(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build export request: %v", ErrFetch, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch export: %v", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch export: status %s", ErrFetch, resp.Status)
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1 // header rows and hand-edited sheets vary
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse export: %v", ErrFetch, err)
	}
	return rows, nil
}
