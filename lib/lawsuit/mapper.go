// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuit

import "fmt"

// NoMovementsDescription is the description of the sentinel movement
// MapDetail synthesizes for a case without recorded movements.
const NoMovementsDescription = "Sem movimentos registrados"

// ProcessingStatus is the status of every current processing record.
// The API only returns a processing record for cases in progress.
const ProcessingStatus = "Em Tramitação"

// Upstream side values of APIParty.Side.
const (
	wireSidePlaintiff = "ativo"
	wireSideDefendant = "passivo"
	wireSideOther     = "outros_participantes"
)

// Upstream degree codes.
const (
	wireDegreeFirst    = "G1"
	wireDegreeSecond   = "G2"
	wireDegreeSuperior = "SUP"
)

// MapDegree maps an upstream degree code to a Degree. Unrecognized
// codes, including the empty string, map to DegreeSuperior: the API
// documents only G1, G2 and SUP, and the superior courts are the
// catch-all for instances outside the first two.
func MapDegree(code string) Degree {
	switch code {
	case wireDegreeFirst:
		return DegreeFirst
	case wireDegreeSecond:
		return DegreeSecond
	default:
		return DegreeSuperior
	}
}

// DegreeCode returns the upstream code for a degree filter. The second
// result is false for DegreeUnset and any value outside the enum, in
// which case the filter must be omitted from the request.
func DegreeCode(degree Degree) (string, bool) {
	switch degree {
	case DegreeFirst:
		return wireDegreeFirst, true
	case DegreeSecond:
		return wireDegreeSecond, true
	case DegreeSuperior:
		return wireDegreeSuperior, true
	default:
		return "", false
	}
}

// MapListItem maps one list element. index is the element's position
// in its result set and only contributes to the ID.
func MapListItem(item APIListItem, index int) ListItem {
	mapped := ListItem{
		ID:             listItemID(item.Number, index),
		Number:         item.Number,
		Court:          item.Court,
		Degree:         MapDegree(item.Degree),
		PrimaryClass:   deref(item.PrimaryClass),
		PrimarySubject: deref(item.PrimarySubject),
	}
	if item.LastMovement != nil {
		mapped.LastMovement = &MovementSummary{
			Date:        item.LastMovement.DateTime,
			Description: item.LastMovement.Description,
		}
	}
	return mapped
}

// MapListResponse maps a list response. HasMore is derived only from
// the presence of a next cursor; the number of items says nothing about
// whether more exist.
func MapListResponse(response ListResponse) Page {
	items := make([]ListItem, len(response.Items))
	for index, item := range response.Items {
		items[index] = MapListItem(item, index)
	}
	cursor := deref(response.NextCursor)
	return Page{
		Items:      items,
		NextCursor: cursor,
		HasMore:    cursor != "",
	}
}

// Reindex rewrites the IDs of items as if they started at position
// offset of their result set. Used when a page is appended to an
// existing result set so IDs stay unique.
func Reindex(items []ListItem, offset int) []ListItem {
	reindexed := make([]ListItem, len(items))
	for index, item := range items {
		item.ID = listItemID(item.Number, offset+index)
		reindexed[index] = item
	}
	return reindexed
}

// KnownSide reports whether raw is one of the side values the API
// documents.
func KnownSide(raw string) bool {
	switch raw {
	case wireSidePlaintiff, wireSideDefendant, wireSideOther:
		return true
	}
	return false
}

// MapParty maps one litigant. "ativo" and "passivo" are the plaintiff
// and defendant sides and "outros_participantes" is SideOther. Any
// other value maps to SidePlaintiff; RawSide keeps the original so the
// view can still show it and callers can report it (see KnownSide).
func MapParty(party APIParty, index int) Party {
	side := SidePlaintiff
	switch party.Side {
	case wireSideDefendant:
		side = SideDefendant
	case wireSideOther:
		side = SideOther
	}

	representatives := make([]Representative, len(party.Representatives))
	for representativeIndex, representative := range party.Representatives {
		representatives[representativeIndex] = Representative{
			ID:   fmt.Sprintf("representante-%d-%s", representativeIndex, representative.Name),
			Name: representative.Name,
			Role: deref(representative.Role),
		}
	}

	return Party{
		ID:              fmt.Sprintf("%s-%d-%s", party.Side, index, party.Name),
		Name:            party.Name,
		Side:            side,
		RawSide:         party.Side,
		Role:            deref(party.Role),
		Representatives: representatives,
	}
}

// MapDetail maps a detail response. A missing last movement becomes a
// sentinel movement described by NoMovementsDescription, and Movements
// is then empty.
func MapDetail(response DetailResponse) Detail {
	processing := response.CurrentProcessing
	classes := nonNil(processing.Classes)
	subjects := nonNil(processing.Subjects)

	detail := Detail{
		ID:             response.Number,
		Number:         response.Number,
		Court:          response.Court,
		SecrecyLevel:   response.SecrecyLevel,
		Degree:         MapDegree(processing.Degree),
		Classes:        classes,
		Subjects:       subjects,
		PrimaryClass:   first(classes),
		PrimarySubject: first(subjects),
		Movements:      []Movement{},
		Parties:        make([]Party, len(response.Parties)),
		CurrentProcessing: Processing{
			ID:            "tramitacao-" + response.Number,
			Venue:         deref(processing.Venue),
			Status:        ProcessingStatus,
			DistributedAt: deref(processing.DistributedAt),
			FiledAt:       deref(processing.FiledAt),
		},
		DistributedAt: deref(processing.DistributedAt),
		FiledAt:       deref(processing.FiledAt),
	}

	for index, party := range response.Parties {
		detail.Parties[index] = MapParty(party, index)
	}

	if movement := response.LastMovement; movement != nil {
		code := deref(movement.Code)
		idSuffix := code
		if idSuffix == "" {
			idSuffix = "last"
		}
		detail.LastMovement = Movement{
			ID:          fmt.Sprintf("movimento-%s-%s", response.Number, idSuffix),
			Date:        movement.Date,
			Description: movement.Description,
			Type:        code,
			Venue:       deref(movement.Venue),
			Code:        code,
		}
		detail.Movements = []Movement{detail.LastMovement}
	} else {
		detail.LastMovement = Movement{
			ID:          fmt.Sprintf("movimento-%s-last", response.Number),
			Description: NoMovementsDescription,
		}
	}

	return detail
}

func listItemID(number string, index int) string {
	return fmt.Sprintf("%s-%d", number, index)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
