// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuitapi

import (
	"context"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// Lister fetches one page of search results. *Client implements it.
type Lister interface {
	List(ctx context.Context, params lawsuit.ListParams) (lawsuit.Page, error)
}

// PageIterator walks a search page by page, following the cursor each
// response carries until a response has none. Items from successive
// pages are re-indexed so their IDs stay unique.
//
// The iterator is not safe for concurrent use.
type PageIterator struct {
	lister  Lister
	params  lawsuit.ListParams
	fetched int
	pages   int
	done    bool
}

// Pages returns an iterator over every page matching params, starting
// at params.Cursor.
func Pages(lister Lister, params lawsuit.ListParams) *PageIterator {
	return &PageIterator{lister: lister, params: params}
}

// Next fetches the next page. It returns nil, nil once the last page
// has been consumed.
func (iterator *PageIterator) Next(ctx context.Context) ([]lawsuit.ListItem, error) {
	if iterator.done {
		return nil, nil
	}

	page, err := iterator.lister.List(ctx, iterator.params)
	if err != nil {
		return nil, err
	}

	items := lawsuit.Reindex(page.Items, iterator.fetched)
	iterator.fetched += len(items)
	iterator.pages++

	if !page.HasMore {
		iterator.done = true
	} else {
		iterator.params = iterator.params.WithCursor(page.NextCursor)
	}

	// An empty page with a cursor still continues the walk; return a
	// non-nil slice so callers can tell it apart from the end.
	if items == nil {
		items = []lawsuit.ListItem{}
	}
	return items, nil
}

// Collect fetches all remaining pages and returns their items
// concatenated. On error it returns the items gathered so far.
func (iterator *PageIterator) Collect(ctx context.Context) ([]lawsuit.ListItem, error) {
	var all []lawsuit.ListItem
	for {
		items, err := iterator.Next(ctx)
		if err != nil {
			return all, err
		}
		if items == nil {
			return all, nil
		}
		all = append(all, items...)
	}
}

// PageCount returns the number of pages fetched so far.
func (iterator *PageIterator) PageCount() int {
	return iterator.pages
}

// Cursor returns the cursor the next call to Next requests, or "" once
// the last page has been consumed.
func (iterator *PageIterator) Cursor() string {
	if iterator.done {
		return ""
	}
	return iterator.params.Cursor
}
