// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuit

// Degree is the judicial instance a case is currently in.
type Degree string

const (
	// DegreeUnset means no degree is selected. It is only meaningful
	// as a filter value; mapped cases always carry one of the others.
	DegreeUnset    Degree = ""
	DegreeFirst    Degree = "FIRST"
	DegreeSecond   Degree = "SECOND"
	DegreeSuperior Degree = "SUPERIOR"
)

// Degrees lists the selectable degrees in display order.
var Degrees = []Degree{DegreeFirst, DegreeSecond, DegreeSuperior}

// Label returns the human-readable name of the degree.
func (degree Degree) Label() string {
	switch degree {
	case DegreeFirst:
		return "1º grau"
	case DegreeSecond:
		return "2º grau"
	case DegreeSuperior:
		return "Superior"
	default:
		return ""
	}
}

// Side is the role a party occupies in the case.
type Side string

const (
	SidePlaintiff Side = "PLAINTIFF"
	SideDefendant Side = "DEFENDANT"

	// SideOther holds third parties the API reports under
	// "outros_participantes" (interested parties, amici, the
	// prosecution acting as custos legis).
	SideOther Side = "OTHER"
)

// Label returns the human-readable name of the side.
func (side Side) Label() string {
	switch side {
	case SidePlaintiff:
		return "Polo ativo"
	case SideDefendant:
		return "Polo passivo"
	case SideOther:
		return "Outros participantes"
	default:
		return string(side)
	}
}

// ListItem is one row of a search result.
type ListItem struct {
	// ID is "<number>-<index>". It is unique within one result set
	// but not stable across fetches.
	ID string

	Number         string
	Court          string
	Degree         Degree
	PrimaryClass   string
	PrimarySubject string

	// LastMovement is nil when the case has no recorded movement.
	LastMovement *MovementSummary
}

// MovementSummary is the abbreviated last movement shown in a list row.
type MovementSummary struct {
	Date        string
	Description string
}

// Movement is a procedural event recorded against a case.
type Movement struct {
	ID          string
	Date        string
	Description string
	Type        string

	// Venue and Code are empty when the API omits them.
	Venue string
	Code  string
}

// Representative is a lawyer or public defender acting for a party.
type Representative struct {
	ID   string
	Name string
	Role string
}

// Party is a litigant.
type Party struct {
	ID   string
	Name string
	Side Side

	// RawSide is the side exactly as the API reported it, kept so a
	// value that fell back to the default remains visible.
	RawSide string

	Role            string
	Representatives []Representative
}

// Processing is the case's current procedural status.
type Processing struct {
	ID            string
	Venue         string
	Status        string
	DistributedAt string
	FiledAt       string
}

// Detail is the full record of a single case.
type Detail struct {
	ID           string
	Number       string
	Court        string
	SecrecyLevel int
	Degree       Degree

	Classes  []string
	Subjects []string

	// PrimaryClass and PrimarySubject mirror the first element of
	// Classes and Subjects, or are empty.
	PrimaryClass   string
	PrimarySubject string

	// LastMovement is always populated; see NoMovementsDescription.
	LastMovement Movement

	// Movements is empty when the case has no recorded movement and
	// otherwise holds exactly LastMovement. The detail endpoint does
	// not return history.
	Movements []Movement

	Parties           []Party
	CurrentProcessing Processing
	DistributedAt     string
	FiledAt           string
}

// PartiesOn returns the parties on the given side, in API order.
func (detail Detail) PartiesOn(side Side) []Party {
	var parties []Party
	for _, party := range detail.Parties {
		if party.Side == side {
			parties = append(parties, party)
		}
	}
	return parties
}

// HasMovements reports whether the case has a real recorded movement.
func (detail Detail) HasMovements() bool {
	return len(detail.Movements) > 0
}

// Page is one mapped page of list results.
type Page struct {
	Items      []ListItem
	NextCursor string

	// HasMore is true exactly when NextCursor is non-empty.
	HasMore bool
}
