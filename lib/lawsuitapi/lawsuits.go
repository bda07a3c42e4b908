// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuitapi

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// List fetches one page of search results. Unset parameters are
// omitted; Limit defaults to lawsuit.DefaultLimit.
func (client *Client) List(ctx context.Context, params lawsuit.ListParams) (lawsuit.Page, error) {
	var response lawsuit.ListResponse
	if err := client.get(ctx, "/lawsuits", params.Values(), &response); err != nil {
		return lawsuit.Page{}, err
	}
	return lawsuit.MapListResponse(response), nil
}

// Get fetches the full record of the case with the given number.
func (client *Client) Get(ctx context.Context, number string) (lawsuit.Detail, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return lawsuit.Detail{}, &APIError{
			Message: "número do processo não informado",
			Err:     errors.New("empty case number"),
		}
	}
	var response lawsuit.DetailResponse
	if err := client.get(ctx, "/lawsuits/"+url.PathEscape(number), nil, &response); err != nil {
		return lawsuit.Detail{}, err
	}
	detail := lawsuit.MapDetail(response)
	for _, party := range detail.Parties {
		if !lawsuit.KnownSide(party.RawSide) {
			client.logger.Warn("unrecognized party side, defaulting to plaintiff",
				"number", detail.Number,
				"side", party.RawSide,
				"party", party.Name,
			)
		}
	}
	return detail, nil
}
