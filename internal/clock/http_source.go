package clock

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// HTTPSource queries a remote server-time endpoint. Any failure falls
// back to the local wall clock in the business timezone: a degraded
// clock must never fail a whole validation pass.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type serverTimeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Now string `json:"now"` // RFC 3339
	} `json:"data"`
}

func (s *HTTPSource) Now(ctx context.Context) time.Time {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return s.fallback("build_request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return s.fallback("request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("clock_fallback reason=status url=%s status=%d", s.url, resp.StatusCode)
		return time.Now().In(businessZone)
	}

	var body serverTimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return s.fallback("decode", err)
	}
	if !body.Success {
		log.Printf("clock_fallback reason=unsuccessful url=%s", s.url)
		return time.Now().In(businessZone)
	}

	t, err := time.Parse(time.RFC3339, body.Data.Now)
	if err != nil {
		return s.fallback("parse", err)
	}
	return t.In(businessZone)
}

func (s *HTTPSource) fallback(reason string, err error) time.Time {
	log.Printf("clock_fallback reason=%s url=%s error=%q", reason, s.url, err.Error())
	return time.Now().In(businessZone)
}
