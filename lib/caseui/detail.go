// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package caseui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/lawsuits/lib/caseno"
	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
	"github.com/bureau-foundation/lawsuits/lib/lawsuitapi"
	"github.com/bureau-foundation/lawsuits/lib/tui"
)

// partySides is the display order of the party groups.
var partySides = []lawsuit.Side{lawsuit.SidePlaintiff, lawsuit.SideDefendant, lawsuit.SideOther}

// renderDetail refreshes the viewport content from the open case,
// keeping the scroll position when the same case is re-rendered.
func (model *Model) renderDetail() {
	detail := model.detail.Detail()
	if detail == nil {
		return
	}
	offset := model.viewport.YOffset
	model.viewport.SetContent(DetailBody(*detail, model.theme, model.viewport.Width))
	model.viewport.SetYOffset(offset)
}

// renderDetailPane renders the open case, or its loading or error
// state, with a scrollbar on the right.
func (model Model) renderDetailPane() string {
	height := max(0, model.visibleHeight())
	detail := model.detail.Detail()

	switch {
	case detail == nil && model.detail.Loading():
		return model.placeInPane(model.spinner.View()+" Carregando "+model.detail.Number()+"…", height)
	case detail == nil && model.detail.Err() != nil:
		return model.placeInPane(model.renderDetailError(model.detail.Err()), height)
	case detail == nil:
		return model.placeInPane("", height)
	}

	scrollbar := tui.RenderScrollbar(model.theme, height,
		model.viewport.TotalLineCount(), model.viewport.Height, model.viewport.YOffset, true)
	body := lipgloss.NewStyle().Width(max(1, model.width-1)).Height(height).Render(model.viewport.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar)
}

func (model Model) renderDetailError(err error) string {
	title := lipgloss.NewStyle().Foreground(model.theme.ErrorText).Bold(true)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	heading := "Não foi possível carregar o processo"
	if lawsuitapi.IsNotFound(err) {
		heading = "Processo não encontrado"
	}
	return strings.Join([]string{
		title.Render(heading),
		lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(errorMessage(err)),
		"",
		faint.Render("r tentar novamente   Esc voltar"),
	}, "\n")
}

// DetailBody renders a case as scrollable text of the given width.
func DetailBody(detail lawsuit.Detail, theme tui.Theme, width int) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	section := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	label := lipgloss.NewStyle().Foreground(theme.FaintText)
	text := lipgloss.NewStyle().Foreground(theme.NormalText)
	wrap := lipgloss.NewStyle().Width(max(10, width-2))

	var lines []string
	add := func(line string) { lines = append(lines, line) }
	field := func(name, value string) {
		if value == "" {
			value = "—"
		}
		add(wrap.Render(label.Render(name+": ") + text.Render(value)))
	}

	add(heading.Render(detail.Number))
	add(text.Render(joinNonEmpty(" · ", detail.Court, detail.Degree.Label(), secrecyLabel(detail.SecrecyLevel))))
	if note := numberNote(detail.Number); note != "" {
		add(label.Render(note))
	}
	add("")

	field("Classe", strings.Join(detail.Classes, "; "))
	field("Assuntos", strings.Join(detail.Subjects, "; "))
	field("Órgão julgador", detail.CurrentProcessing.Venue)
	field("Situação", detail.CurrentProcessing.Status)
	field("Distribuído em", lawsuit.FormatDate(detail.DistributedAt))
	field("Autuado em", lawsuit.FormatDate(detail.FiledAt))
	add("")

	add(section.Render("Último movimento"))
	movement := detail.LastMovement
	if detail.HasMovements() {
		add(wrap.Render(label.Render(lawsuit.FormatDateTime(movement.Date)+"  ") + text.Render(movement.Description)))
		if movement.Venue != "" {
			add(label.Render("  " + movement.Venue))
		}
	} else {
		add(label.Render(movement.Description))
	}
	add("")

	add(section.Render("Partes"))
	if len(detail.Parties) == 0 {
		add(label.Render("Nenhuma parte informada"))
	}
	for _, side := range partySides {
		parties := detail.PartiesOn(side)
		if len(parties) == 0 {
			continue
		}
		add(sideStyle(theme, side).Render(side.Label()))
		for _, party := range parties {
			add(wrap.Render("  • " + text.Render(party.Name) + roleSuffix(label, party.Role)))
			for _, representative := range party.Representatives {
				add(wrap.Render("      " + label.Render("Representante: ") + text.Render(representative.Name) + roleSuffix(label, representative.Role)))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func sideStyle(theme tui.Theme, side lawsuit.Side) lipgloss.Style {
	color := theme.OtherPartyColor
	switch side {
	case lawsuit.SidePlaintiff:
		color = theme.PlaintiffColor
	case lawsuit.SideDefendant:
		color = theme.DefendantColor
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

func roleSuffix(style lipgloss.Style, role string) string {
	if role == "" {
		return ""
	}
	return style.Render(" (" + role + ")")
}

func secrecyLabel(level int) string {
	if level <= 0 {
		return "Público"
	}
	return fmt.Sprintf("Sigilo nível %d", level)
}

// numberNote describes the justice segment of a case number and flags
// a check digit pair that does not match.
func numberNote(number string) string {
	parsed, err := caseno.Parse(number)
	if err != nil {
		return ""
	}
	note := parsed.SegmentName()
	if !parsed.ChecksumValid() {
		note = joinNonEmpty(" · ", note, "dígito verificador não confere (esperado "+parsed.ExpectedCheckDigits()+")")
	}
	return note
}
