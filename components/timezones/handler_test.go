package timezones

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/sources/jsonpath"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func TestNewHandler_EmptyQueryReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"UTC"}),
		WithEmptySearchMode(EmptySearchNone),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/timezones", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := strings.TrimSpace(res.Header.Get("Content-Type")); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestNewHandler_SearchAndLimitClamped(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"America/Chicago", "America/New_York", "Europe/Paris", "UTC"}),
		WithMaxLimit(2),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/timezones?q=America&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 2 {
		t.Fatalf("expected 2 results, got %d: %#v", len(payload.Data), payload.Data)
	}
	want := []Option{
		{Value: "America/Chicago", Label: "America/Chicago", Region: "America"},
		{Value: "America/New_York", Label: "America/New York", Region: "America"},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHandler_RegionParamNarrowsResults(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"America/Paramaribo", "Europe/Paris", "UTC"}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/timezones?q=par&region=europe", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []Option{{Value: "Europe/Paris", Label: "Europe/Paris", Region: "Europe"}}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerResponse_FeedsJSONSource(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"America/Chicago", "America/New_York", "Europe/Paris"}),
		WithEmptySearchMode(EmptySearchTop),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/timezones", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	nodes, err := jsonpath.Extract(rec.Body.Bytes(), Mapping())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	col, err := collection.FromNodes(nodes)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	want := []collection.Key{"America/Chicago", "America/New_York", "Europe/Paris"}
	if diff := cmp.Diff(want, col.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if len(nodes) != 2 || nodes[0].Text != "America" || nodes[1].Text != "Europe" {
		t.Fatalf("unexpected sections: %#v", nodes)
	}
}

func TestNewHandler_CustomQueryParams(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"UTC", "Europe/Paris"}),
		WithSearchParam("search"),
		WithLimitParam("l"),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/timezones?search=utc&l=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Value != "UTC" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestNewHandler_GuardRejects(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"UTC"}),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/timezones?q=utc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(WithZones([]string{"UTC"}))

	req := httptest.NewRequest(http.MethodPost, "/api/timezones?q=utc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestNewHandler_NegativeLimitReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"UTC"}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/timezones?q=utc&limit=-1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}
