// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuit

// ListResponse is the body of GET /lawsuits.
type ListResponse struct {
	Items      []APIListItem `json:"items"`
	NextCursor *string       `json:"nextCursor,omitempty"`
}

// APIListItem is one element of ListResponse.Items.
type APIListItem struct {
	Number         string            `json:"numeroProcesso"`
	Court          string            `json:"siglaTribunal"`
	Degree         string            `json:"grauAtual"`
	PrimaryClass   *string           `json:"classePrincipal"`
	PrimarySubject *string           `json:"assuntoPrincipal"`
	LastMovement   *APIListMovement  `json:"ultimoMovimento"`
	PartiesSummary APIPartiesSummary `json:"partesResumo"`
}

// APIListMovement is the abbreviated movement attached to a list item.
type APIListMovement struct {
	DateTime    string  `json:"dataHora"`
	Description string  `json:"descricao"`
	Venue       *string `json:"orgaoJulgador"`
}

// APIPartiesSummary names the parties on each side of a list item.
type APIPartiesSummary struct {
	Plaintiffs []string `json:"ativo"`
	Defendants []string `json:"passivo"`
}

// DetailResponse is the body of GET /lawsuits/{number}.
type DetailResponse struct {
	Number            string        `json:"numeroProcesso"`
	Court             string        `json:"siglaTribunal"`
	SecrecyLevel      int           `json:"nivelSigilo"`
	CurrentProcessing APIProcessing `json:"tramitacaoAtual"`
	Parties           []APIParty    `json:"partes"`
	LastMovement      *APIMovement  `json:"ultimoMovimento"`
}

// APIProcessing is the current processing record of a detail.
type APIProcessing struct {
	Degree        string   `json:"grau"`
	Venue         *string  `json:"orgaoJulgador"`
	Classes       []string `json:"classes"`
	Subjects      []string `json:"assuntos"`
	DistributedAt *string  `json:"dataDistribuicao"`
	FiledAt       *string  `json:"dataAutuacao"`
}

// APIParty is one litigant of a detail.
type APIParty struct {
	Name            string              `json:"nome"`
	Side            string              `json:"polo"`
	Role            *string             `json:"tipoParte"`
	Representatives []APIRepresentative `json:"representantes"`
}

// APIRepresentative is a lawyer acting for an APIParty.
type APIRepresentative struct {
	Name string  `json:"nome"`
	Role *string `json:"tipo"`
}

// APIMovement is the last movement of a detail.
type APIMovement struct {
	Date        string  `json:"data"`
	Description string  `json:"descricao"`
	Venue       *string `json:"orgaoJulgador"`
	Code        *string `json:"codigo"`
}
