// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package caseui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/lawsuits/lib/casesearch"
	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
	"github.com/bureau-foundation/lawsuits/lib/lawsuitapi"
	"github.com/bureau-foundation/lawsuits/lib/tui"
)

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Carregando..."
	}

	var content string
	if model.focus == FocusDetail {
		content = model.renderDetailPane()
	} else {
		content = model.renderListPane()
	}

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))

	output := strings.Join([]string{
		model.renderFilterBar(),
		model.renderMessageLine(),
		content,
		separator,
		model.renderHelp(),
	}, "\n")

	if model.picker != nil {
		lines := model.picker.Render(model.theme, max(1, model.visibleHeight()-2))
		output = tui.SpliceCentered(output, lines, model.width, model.height)
	}
	return output
}

// renderFilterBar renders the form of the active mode on one line.
func (model Model) renderFilterBar() string {
	state := model.engine.State()
	label := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	value := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	modeStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.Accent)

	field := func(name string, region FocusRegion, view string) string {
		style := label
		if model.focus == region {
			style = style.Foreground(model.theme.Accent).Bold(true)
		}
		return style.Render(name+": ") + view
	}
	selection := func(name, current string) string {
		if current == "" {
			current = "Todos"
		}
		return label.Render(name+": ") + value.Render(current)
	}

	var parts []string
	if state.Mode == casesearch.ModeAdvanced {
		parts = []string{
			modeStyle.Render("[Avançada]"),
			field("Consulta", FocusQuery, model.query.View()),
			selection("Tribunal", state.Advanced.Court),
			selection("Grau", state.Advanced.Degree.Label()),
		}
	} else {
		parts = []string{
			modeStyle.Render("[Simples]"),
			field("Número", FocusNumber, model.number.View()),
			field("Palavra-chave", FocusKeyword, model.keyword.View()),
			selection("Tribunal", state.Simple.Court),
			selection("Grau", state.Simple.Degree.Label()),
		}
	}
	parts = append(parts, selection("Por página", fmt.Sprint(state.PageSize)))
	return ansi.Truncate(" "+strings.Join(parts, "  "), model.width, "…")
}

// renderMessageLine shows the form error, or the result count and
// loading state.
func (model Model) renderMessageLine() string {
	if model.engine.SearchError() {
		style := lipgloss.NewStyle().Foreground(model.theme.ErrorText).Bold(true)
		return style.Render(" Número de processo inválido. Use o formato 0000000-00.0000.0.00.0000.")
	}

	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	results := model.engine.Results()
	visible := model.engine.Visible()

	var parts []string
	switch {
	case model.engine.Routing().HasLocalFilters && len(visible) != len(results.Items):
		parts = append(parts, fmt.Sprintf("%d de %d carregados", len(visible), len(results.Items)))
	default:
		parts = append(parts, fmt.Sprintf("%d carregados", len(results.Items)))
	}
	if results.HasMore {
		parts = append(parts, "há mais resultados")
	}
	if model.engine.DebouncePending() {
		parts = append(parts, "aguardando digitação…")
	}
	line := faint.Render(" " + strings.Join(parts, " · "))
	if model.loading() {
		line += " " + lipgloss.NewStyle().Foreground(model.theme.Accent).Render(model.spinner.View()+"buscando")
	}
	return ansi.Truncate(line, model.width, "…")
}

// renderListPane renders the result list, or the loading, error or
// empty state in its place.
func (model Model) renderListPane() string {
	height := max(0, model.visibleHeight())
	results := model.engine.Results()
	items := model.engine.Visible()

	switch {
	case results.Err != nil && !results.Loading:
		return model.placeInPane(model.renderError(results.Err), height)
	case len(items) == 0 && results.Loading:
		return model.placeInPane(model.spinner.View()+" Carregando processos…", height)
	case len(items) == 0:
		return model.placeInPane(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Nenhum processo encontrado."), height)
	}

	rowWidth := max(1, model.width-1)
	keyword := ""
	if state := model.engine.State(); state.Mode == casesearch.ModeSimple {
		keyword = state.Simple.Keyword
	}

	rows := make([]string, 0, height)
	for index := model.scrollOffset; index < len(items) && len(rows) < height; index++ {
		rows = append(rows, model.renderRow(items[index], keyword, index == model.cursor, rowWidth))
	}
	if model.engine.ShowLoadMore() && len(rows) < height && model.scrollOffset+len(rows) >= len(items) {
		more := "  m carregar mais"
		if results.Loading {
			more = "  " + model.spinner.View() + "carregando…"
		}
		rows = append(rows, lipgloss.NewStyle().Foreground(model.theme.Accent).Render(more))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}

	scrollbar := tui.RenderScrollbar(model.theme, height, len(items), height, model.scrollOffset, model.focus == FocusList)
	body := lipgloss.NewStyle().Width(rowWidth).Height(height).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar)
}

// renderRow renders one case:
//
//	0001234-71.2024.8.26.0100  TJSP  1º grau  Classe · Assunto  12/03/2024 Descrição
func (model Model) renderRow(item lawsuit.ListItem, keyword string, selected bool, width int) string {
	theme := model.theme
	base := lipgloss.NewStyle().Foreground(theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	match := lipgloss.NewStyle().Foreground(theme.HighlightForeground).Background(theme.HighlightBackground)
	if selected {
		base = base.Background(theme.SelectedBackground).Foreground(theme.SelectedForeground)
		faint = faint.Background(theme.SelectedBackground)
	}
	highlight := func(text string, style lipgloss.Style) string {
		return tui.Highlight(text, keyword, style, match, nil)
	}

	marker := "  "
	if selected {
		marker = base.Render("▌ ")
	}
	parts := []string{
		highlight(item.Number, base.Bold(true)),
		highlight(item.Court, base),
		highlight(item.Degree.Label(), faint),
	}
	if summary := joinNonEmpty(" · ", item.PrimaryClass, item.PrimarySubject); summary != "" {
		parts = append(parts, highlight(summary, base))
	}
	if item.LastMovement != nil {
		parts = append(parts,
			faint.Render(lawsuit.FormatDate(item.LastMovement.Date))+" "+highlight(item.LastMovement.Description, faint))
	}

	separator := faint.Render("  ")
	row := marker + strings.Join(parts, separator)
	row = ansi.Truncate(row, width, "…")
	if selected {
		if pad := width - ansi.StringWidth(row); pad > 0 {
			row += base.Render(strings.Repeat(" ", pad))
		}
	}
	return row
}

// renderError renders the full-view error state with its recovery
// actions.
func (model Model) renderError(err error) string {
	title := lipgloss.NewStyle().Foreground(model.theme.ErrorText).Bold(true)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	return strings.Join([]string{
		title.Render("Não foi possível carregar os processos"),
		lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(errorMessage(err)),
		"",
		faint.Render("r tentar novamente   R limpar filtros e tentar novamente"),
	}, "\n")
}

// errorMessage returns the human-readable message of an API error.
func errorMessage(err error) string {
	var apiError *lawsuitapi.APIError
	if errors.As(err, &apiError) && apiError.Message != "" {
		return apiError.Message
	}
	return err.Error()
}

// placeInPane centers text in a pane of the given height.
func (model Model) placeInPane(text string, height int) string {
	return lipgloss.Place(model.width, height, lipgloss.Center, lipgloss.Center, text)
}

// renderHelp renders the bottom line: a recent log message if there is
// one, otherwise key hints for the focused region.
func (model Model) renderHelp() string {
	if model.status != "" {
		color := model.theme.WarningText
		if model.statusLevel >= slog.LevelError {
			color = model.theme.ErrorText
		}
		style := lipgloss.NewStyle().Foreground(color).Bold(true)
		return ansi.Truncate(style.Render(" "+model.status), model.width, "…")
	}

	var help string
	switch model.focus {
	case FocusNumber, FocusKeyword:
		help = "[FILTRO] Tab próximo campo  Enter/Esc voltar à lista"
	case FocusQuery:
		help = "[CONSULTA] Enter buscar  Esc voltar à lista"
	case FocusPicker:
		help = "[SELEÇÃO] ↑↓ escolher  Enter aplicar  Esc cancelar"
	case FocusDetail:
		help = "[PROCESSO] q sair  ↑↓ rolar  Esc voltar  r recarregar  t tema"
	default:
		help = "[LISTA] q sair  ↑↓ navegar  Enter abrir  / número  f palavra-chave  c tribunal  d grau  p por página  a modo  x limpar  t tema"
		if model.engine.State().Mode == casesearch.ModeAdvanced {
			help = "[LISTA] q sair  ↑↓ navegar  Enter abrir  / consulta  c tribunal  d grau  p por página  a modo  x limpar  t tema"
		}
		if model.engine.ShowLoadMore() {
			help += "  m mais"
		}
		if items := model.engine.Visible(); len(items) > 0 {
			help += fmt.Sprintf("  %d/%d", model.cursor+1, len(items))
		}
	}
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	return ansi.Truncate(style.Render(" "+help), model.width, "…")
}

func joinNonEmpty(separator string, values ...string) string {
	var kept []string
	for _, value := range values {
		if value != "" {
			kept = append(kept, value)
		}
	}
	return strings.Join(kept, separator)
}
