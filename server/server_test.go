package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const sampleDataset = `[
	{"id":"lot-1","make":"Ford","model":"Focus","year":2021,"startingBid":4500},
	{"id":"lot-2","make":"Toyota","model":"Yaris","year":2019,"startingBid":2500}
]`

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vehicles.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func TestLoadDataset(t *testing.T) {
	t.Parallel()

	ds, err := LoadDataset(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.Count() != 2 {
		t.Fatalf("count = %d, want 2", ds.Count())
	}
	if string(ds.Raw()) != sampleDataset {
		t.Fatal("raw bytes must round-trip untouched")
	}
}

func TestLoadDatasetRejectsNonArray(t *testing.T) {
	t.Parallel()
	if _, err := LoadDataset(writeDataset(t, `{"vehicles":[]}`)); err == nil {
		t.Fatal("expected an error for a non-array dataset")
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestVehiclesEndpoint(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(items) != 2 || items[0]["id"] != "lot-1" {
		t.Fatalf("items = %v", items)
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["vehicles"] != float64(2) {
		t.Fatalf("body = %v", body)
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lots", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
