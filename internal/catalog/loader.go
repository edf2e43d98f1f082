package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

// Config represents the JSON catalog file
type Config struct {
	Version     string                  `json:"version"`
	Description string                  `json:"description"`
	Items       []domain.ItemDefinition `json:"items"`
}

// Load reads, schema-checks and validates a catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return Parse(data)
}

// Parse builds a catalog from the JSON contents of a catalog file
func Parse(data []byte) (*Catalog, error) {
	if err := checkSchema(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return New(cfg.Items)
}

// LoadOrDefault loads the catalog at path, or returns the built-in catalog when path is empty
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
