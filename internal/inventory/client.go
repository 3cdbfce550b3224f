package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/callmeniyu/Oastel-sub001/internal/domain"
)

// Client queries a remote inventory service over HTTP. The remote
// contract is {success, data: [{time, capacity, bookedCount}]}; an
// unsuccessful envelope means "no slots for this date" and is not an
// error, while transport and decode failures are.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type slotsEnvelope struct {
	Success bool   `json:"success"`
	Data    []Slot `json:"data"`
}

func (c *Client) SlotsFor(ctx context.Context, packageType domain.PackageType, packageID, date string) ([]Slot, error) {
	q := url.Values{}
	q.Set("packageType", string(packageType))
	q.Set("packageId", packageID)
	q.Set("date", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/timeslots?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("inventory: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inventory: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inventory: unexpected status %d", resp.StatusCode)
	}

	var body slotsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("inventory: decode response: %w", err)
	}

	if !body.Success || body.Data == nil {
		return []Slot{}, nil
	}
	return body.Data, nil
}
