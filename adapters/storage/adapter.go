// Package storage provides the flat-file catalog store. A catalog is a
// pricing tree persisted as JSON (the entity record format) or authored
// as HCL; the store picks the decoder from the file extension.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	catalog "tierpricing/adapters/hcl"
	"tierpricing/core/pricing"
	"tierpricing/internal/errors"
	"tierpricing/internal/logging"

	"go.uber.org/zap"
)

// Load reads a pricing tree from path. ".hcl" files go through the HCL
// loader; everything else is treated as the JSON record format.
func Load(path string) (*pricing.Pricing, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return catalog.LoadFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading catalog file", err)
	}
	tree, err := pricing.DecodePricing(data)
	if err != nil {
		return nil, errors.Parsing("decoding catalog JSON", err)
	}
	if tree == nil {
		return nil, errors.Input("catalog file is empty")
	}

	logging.Debug("catalog loaded",
		zap.String("path", path),
		zap.Int("tiers", len(tree.Tiers)))
	return tree, nil
}

// Save writes a pricing tree to path as indented JSON, creating parent
// directories as needed.
func Save(path string, tree *pricing.Pricing) error {
	if tree == nil {
		return errors.Input("nothing to save: nil pricing tree")
	}

	data, err := pricing.EncodePricing(tree)
	if err != nil {
		return errors.Internal("encoding catalog", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Config("creating catalog directory", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("writing catalog file", err)
	}

	logging.Debug("catalog saved", zap.String("path", path))
	return nil
}
