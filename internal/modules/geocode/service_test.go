package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dongne-wiki/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	var gotKeyID, gotKey, gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKeyID = r.Header.Get("X-NCP-APIGW-API-KEY-ID")
		gotKey = r.Header.Get("X-NCP-APIGW-API-KEY")
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","addresses":[]}`))
	}))
	defer upstream.Close()

	svc := NewService(config.NaverMapConfig{
		Endpoint: upstream.URL,
		KeyID:    "key-id",
		Key:      "key",
	})

	payload, err := svc.Lookup(context.Background(), "서울 종로구 성균관로 10")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK","addresses":[]}`, string(payload))
	assert.Equal(t, "key-id", gotKeyID)
	assert.Equal(t, "key", gotKey)
	assert.Equal(t, "서울 종로구 성균관로 10", gotQuery)
}

func TestReverseLookup(t *testing.T) {
	var gotCoords, gotOutput, gotOrders string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCoords = r.URL.Query().Get("coords")
		gotOutput = r.URL.Query().Get("output")
		gotOrders = r.URL.Query().Get("orders")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"region":{"area1":{"name":"서울특별시"},"area2":{"name":"종로구"},"area3":{"name":"명륜3가"}}}]}`))
	}))
	defer upstream.Close()

	svc := NewService(config.NaverMapConfig{ReverseEndpoint: upstream.URL})

	payload, err := svc.ReverseLookup(context.Background(), "126.998,37.583", "legalcode,admcode")
	require.NoError(t, err)
	assert.Contains(t, string(payload), "종로구")
	assert.Equal(t, "126.998,37.583", gotCoords)
	assert.Equal(t, "json", gotOutput)
	assert.Equal(t, "legalcode,admcode", gotOrders)
}

func TestReverseLookupUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad coords", http.StatusBadRequest)
	}))
	defer upstream.Close()

	svc := NewService(config.NaverMapConfig{ReverseEndpoint: upstream.URL})

	_, err := svc.ReverseLookup(context.Background(), "0,0", "")
	assert.ErrorIs(t, err, errUpstream)
}

func TestLookupUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer upstream.Close()

	svc := NewService(config.NaverMapConfig{Endpoint: upstream.URL})

	_, err := svc.Lookup(context.Background(), "주소")
	assert.ErrorIs(t, err, errUpstream)
}

func TestLookupInvalidPayload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer upstream.Close()

	svc := NewService(config.NaverMapConfig{Endpoint: upstream.URL})

	_, err := svc.Lookup(context.Background(), "주소")
	assert.ErrorIs(t, err, errUpstream)
}
