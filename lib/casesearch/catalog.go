// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
	"github.com/bureau-foundation/lawsuits/lib/lawsuitapi"
)

// ErrCatalogLoading is returned by Catalog.Load while another walk is
// in progress.
var ErrCatalogLoading = errors.New("casesearch: court catalog is already loading")

// Catalog collects the distinct court codes known to the API by walking
// every page of the unfiltered search. A successful walk happens at
// most once; a failed walk leaves the catalog ready to try again.
//
// Catalog is safe for concurrent use.
type Catalog struct {
	lister   lawsuitapi.Lister
	pageSize int
	logger   *slog.Logger

	mu      sync.Mutex
	started bool
	courts  []string
}

// NewCatalog returns a catalog that walks lister at the API's maximum
// page size.
func NewCatalog(lister lawsuitapi.Lister, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{lister: lister, pageSize: lawsuit.MaxLimit, logger: logger}
}

// WithPageSize sets the page size of the walk, clamped to
// 1..lawsuit.MaxLimit. It must be called before the first Load.
func (catalog *Catalog) WithPageSize(size int) *Catalog {
	catalog.pageSize = max(1, min(size, lawsuit.MaxLimit))
	return catalog
}

// Load returns the sorted court codes. The first call walks the API;
// once a walk has succeeded later calls return its result without
// fetching. If the walk fails, Load returns the courts found in
// fallback (normally the list currently on screen) together with the
// error, and the next call walks again.
func (catalog *Catalog) Load(ctx context.Context, fallback []lawsuit.ListItem) ([]string, error) {
	catalog.mu.Lock()
	if catalog.started {
		courts, done := catalog.courts, catalog.courts != nil
		catalog.mu.Unlock()
		if done {
			return courts, nil
		}
		return CourtsOf(fallback), ErrCatalogLoading
	}
	catalog.started = true
	catalog.mu.Unlock()

	iterator := lawsuitapi.Pages(catalog.lister, lawsuit.ListParams{Limit: catalog.pageSize})
	seen := make(map[string]struct{})
	for {
		items, err := iterator.Next(ctx)
		if err != nil {
			catalog.mu.Lock()
			catalog.started = false
			catalog.mu.Unlock()

			catalog.logger.Warn("court catalog unavailable, using loaded cases",
				"pages", iterator.PageCount(),
				"error", err,
			)
			return CourtsOf(fallback), fmt.Errorf("casesearch: loading court catalog: %w", err)
		}
		if items == nil {
			break
		}
		for _, item := range items {
			if item.Court != "" {
				seen[item.Court] = struct{}{}
			}
		}
	}

	courts := sortedKeys(seen)
	catalog.mu.Lock()
	catalog.courts = courts
	catalog.mu.Unlock()

	catalog.logger.Debug("court catalog loaded",
		"courts", len(courts),
		"pages", iterator.PageCount(),
	)
	return courts, nil
}

// Loaded reports whether a walk has completed successfully.
func (catalog *Catalog) Loaded() bool {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	return catalog.courts != nil
}

// CourtsOf returns the sorted distinct non-empty court codes of items.
func CourtsOf(items []lawsuit.ListItem) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		if item.Court != "" {
			seen[item.Court] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
