package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/dongne-wiki/core/internal/config"
)

var errUpstream = errors.New("geocode upstream failed")

// Service proxies address lookups to the Naver Cloud geocoding APIs, both
// forward (address → coordinates) and reverse (coordinates → gu/dong).
type Service struct {
	cfg    config.NaverMapConfig
	client *http.Client
}

func NewService(cfg config.NaverMapConfig) *Service {
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup resolves an address query against the upstream API and returns the
// raw JSON payload.
func (s *Service) Lookup(ctx context.Context, query string) (json.RawMessage, error) {
	return s.proxy(ctx, s.cfg.Endpoint+"?query="+neturl.QueryEscape(query))
}

// ReverseLookup resolves coordinates ("lng,lat") to region names. Orders picks
// the upstream result kinds (e.g. "legalcode,admcode"); empty means the
// upstream default.
func (s *Service) ReverseLookup(ctx context.Context, coords, orders string) (json.RawMessage, error) {
	params := neturl.Values{}
	params.Set("coords", coords)
	params.Set("output", "json")
	if orders != "" {
		params.Set("orders", orders)
	}
	return s.proxy(ctx, s.cfg.ReverseEndpoint+"?"+params.Encode())
}

func (s *Service) proxy(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", s.cfg.KeyID)
	req.Header.Set("X-NCP-APIGW-API-KEY", s.cfg.Key)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUpstream, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: status %d: %s", errUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid JSON payload", errUpstream)
	}
	return json.RawMessage(body), nil
}
