package server

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset holds the catalog JSON loaded once at startup. The raw
// bytes are served verbatim so the export round-trips untouched.
type Dataset struct {
	raw   []byte
	count int
}

// LoadDataset reads and validates a vehicle dataset file. The file
// must contain a single JSON array of vehicle objects.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("dataset is not a JSON array: %w", err)
	}

	return &Dataset{raw: raw, count: len(items)}, nil
}

// Raw returns the dataset bytes as loaded
func (d *Dataset) Raw() []byte {
	return d.raw
}

// Count returns the number of vehicles in the dataset
func (d *Dataset) Count() int {
	return d.count
}
