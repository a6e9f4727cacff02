package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/model"
	"github.com/lotworks/lotview/internal/store"
)

// Client fetches the vehicle catalog from the catalog server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// wireVehicle tolerates sources whose id is numeric, a string, or
// missing entirely
type wireVehicle struct {
	model.Vehicle
	RawID any `json:"id"`
}

// Fetch performs the one-time catalog GET and maps the JSON array to
// vehicles. Ids absent from the source are synthesized sequentially;
// they are stable for the lifetime of this fetch but NOT across
// re-fetches, so favorites stored against synthesized ids go stale
// after a refetch (matches the reference behavior, flagged rather
// than fixed).
func (c *Client) Fetch(ctx context.Context) ([]model.Vehicle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/vehicles", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog fetch failed: status %d: %s", resp.StatusCode, string(body))
	}

	var wire []wireVehicle
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("catalog is not a vehicle array: %w", err)
	}

	vehicles := make([]model.Vehicle, len(wire))
	for i, w := range wire {
		v := w.Vehicle
		v.ID = normalizeID(w.RawID, i)
		vehicles[i] = v
	}
	return vehicles, nil
}

// normalizeID keeps a source-provided id and synthesizes a sequential
// one otherwise
func normalizeID(raw any, index int) string {
	switch id := raw.(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatInt(int64(id), 10)
	}
	return fmt.Sprintf("veh-%d", index+1)
}

// Load drives the fetch lifecycle against the store. A failure leaves
// the store in a retryable failed state; retry happens only on an
// explicit new Load call.
func Load(ctx context.Context, c *Client, st *store.Store) error {
	st.SetCatalogLoading()

	vehicles, err := c.Fetch(ctx)
	if err != nil {
		logger.Error("Catalog fetch failed", logger.F("error", err))
		st.SetCatalogFailed(err.Error())
		return err
	}

	logger.Info("Catalog loaded", logger.F("vehicles", len(vehicles)))
	st.SetCatalog(vehicles)
	return nil
}
