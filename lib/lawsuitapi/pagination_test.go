// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuitapi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// scriptedLister serves pages keyed by cursor and records every call.
type scriptedLister struct {
	pages map[string]lawsuit.Page
	fail  map[string]error
	calls []lawsuit.ListParams
}

func (lister *scriptedLister) List(_ context.Context, params lawsuit.ListParams) (lawsuit.Page, error) {
	lister.calls = append(lister.calls, params)
	if err := lister.fail[params.Cursor]; err != nil {
		return lawsuit.Page{}, err
	}
	return lister.pages[params.Cursor], nil
}

func pageOf(next string, numbers ...string) lawsuit.Page {
	items := make([]lawsuit.ListItem, len(numbers))
	for index, number := range numbers {
		items[index] = lawsuit.ListItem{ID: number, Number: number}
	}
	return lawsuit.Page{Items: items, NextCursor: next, HasMore: next != ""}
}

func TestPageIteratorFollowsCursor(t *testing.T) {
	lister := &scriptedLister{pages: map[string]lawsuit.Page{
		"":   pageOf("c1", "a", "b"),
		"c1": pageOf("c2"),
		"c2": pageOf("", "c"),
	}}

	iterator := Pages(lister, lawsuit.ListParams{Limit: 100, Court: "TJSP"})
	items, err := iterator.Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, []string{"a-0", "b-1", "c-2"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, 3, iterator.PageCount())
	require.Len(t, lister.calls, 3)
	for _, call := range lister.calls {
		assert.Equal(t, 100, call.Limit)
		assert.Equal(t, "TJSP", call.Court)
	}
	assert.Equal(t, "c2", lister.calls[2].Cursor)

	more, err := iterator.Next(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, more)
}

func TestPageIteratorErrorKeepsPartialResults(t *testing.T) {
	failure := errors.New("boom")
	lister := &scriptedLister{
		pages: map[string]lawsuit.Page{"": pageOf("c1", "a")},
		fail:  map[string]error{"c1": failure},
	}
	items, err := Pages(lister, lawsuit.ListParams{}).Collect(context.Background())
	assert.ErrorIs(t, err, failure)
	assert.Len(t, items, 1)
}

func TestPageIteratorCursor(t *testing.T) {
	lister := &scriptedLister{pages: map[string]lawsuit.Page{
		"":   pageOf("c1", "a"),
		"c1": pageOf("", "b"),
	}}
	iterator := Pages(lister, lawsuit.ListParams{})

	_, err := iterator.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c1", iterator.Cursor())

	_, err = iterator.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, iterator.Cursor())
}
