// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package caseui

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/lawsuits/lib/caseno"
	"github.com/bureau-foundation/lawsuits/lib/casesearch"
	"github.com/bureau-foundation/lawsuits/lib/clock"
	"github.com/bureau-foundation/lawsuits/lib/debounce"
	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
	"github.com/bureau-foundation/lawsuits/lib/tui"
)

// Source is the lawsuit API as the viewer uses it.
// *lawsuitapi.Client implements it.
type Source interface {
	List(ctx context.Context, params lawsuit.ListParams) (lawsuit.Page, error)
	Get(ctx context.Context, number string) (lawsuit.Detail, error)
}

// FocusRegion identifies which part of the view receives keys.
type FocusRegion int

const (
	FocusList FocusRegion = iota
	FocusDetail
	FocusNumber
	FocusKeyword
	FocusQuery
	FocusPicker
)

// pickerKind says which filter the open picker edits.
type pickerKind int

const (
	pickCourt pickerKind = iota
	pickDegree
	pickPageSize
)

// Messages reporting finished commands.
type (
	listResultMsg struct {
		response casesearch.Response
	}
	detailResultMsg struct {
		response casesearch.DetailResponse
	}
	catalogResultMsg struct {
		courts []string
		err    error
	}
	systemModeMsg struct {
		mode tui.Mode
	}
)

// Config holds configuration for creating a Model.
type Config struct {
	Source Source

	// Catalog supplies the court picker. Defaults to a catalog
	// walking Source.
	Catalog *casesearch.Catalog

	// Context bounds every request. Defaults to context.Background().
	Context context.Context

	PageSize        int
	PageSizeOptions []int // Defaults to casesearch.PageSizeOptions.
	DebounceDelay   time.Duration
	Clock           clock.Clock

	// Post delivers debounced work to the event loop; pass
	// Poster.Post for a running program.
	Post debounce.Post

	// ThemeMode is "dark", "light" or "auto". In auto mode the stored
	// choice in ModeStore is reconciled with SystemMode.
	ThemeMode  string
	ModeStore  tui.ModeStore
	SystemMode tui.Mode

	// DetectMode re-reads the system preference when the terminal
	// regains focus. Nil disables re-detection.
	DetectMode func() tui.Mode

	Logger *slog.Logger
}

// Model is the bubbletea model of the viewer.
type Model struct {
	source  Source
	engine  *casesearch.Engine
	detail  *casesearch.DetailTracker
	catalog *casesearch.Catalog
	ctx     context.Context
	logger  *slog.Logger
	keys    KeyMap

	// Color scheme. storedMode is the persisted user choice, "" while
	// following the system. explicitMode is set once this session
	// renders a user choice; system changes are then ignored.
	// fixedMode disables resolution when the configuration names a
	// mode.
	theme        tui.Theme
	modeStore    tui.ModeStore
	storedMode   tui.Mode
	explicitMode bool
	fixedMode    bool
	detectMode   func() tui.Mode

	width  int
	height int
	ready  bool

	focus      FocusRegion
	priorFocus FocusRegion // Restored when a picker closes.

	number  textinput.Model
	keyword textinput.Model
	query   textinput.Model

	picker     *tui.Picker
	pickerKind pickerKind

	cursor       int
	scrollOffset int

	courts         []string
	catalogLoaded  bool
	catalogLoading bool

	pageSizes []int

	spinner  spinner.Model
	spinning bool
	viewport viewport.Model

	// Status bar log message; statusSequence matches fades to the
	// message they were scheduled for.
	status         string
	statusLevel    slog.Level
	statusSequence uint64
}

// NewModel creates a Model. Init issues the initial query.
func NewModel(config Config) Model {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = context.Background()
	}
	catalog := config.Catalog
	if catalog == nil {
		catalog = casesearch.NewCatalog(config.Source, logger)
	}
	pageSizes := config.PageSizeOptions
	if len(pageSizes) == 0 {
		pageSizes = casesearch.PageSizeOptions
	}

	model := Model{
		source: config.Source,
		engine: casesearch.NewEngine(casesearch.Config{
			PageSize:      config.PageSize,
			DebounceDelay: config.DebounceDelay,
			Clock:         config.Clock,
			Post:          config.Post,
			Logger:        logger,
		}),
		detail:     &casesearch.DetailTracker{},
		catalog:    catalog,
		ctx:        ctx,
		logger:     logger,
		keys:       DefaultKeyMap,
		modeStore:  config.ModeStore,
		detectMode: config.DetectMode,
		number:     newInput("0000000-00.0000.0.00.0000", caseno.Length),
		keyword:    newInput("classe, assunto, movimento…", 0),
		query:      newInput("número, parte ou termo", 0),
		pageSizes:  pageSizes,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport:   viewport.New(0, 0),

		// Init always starts the first query and the catalog walk.
		spinning:       true,
		catalogLoading: true,
	}
	model.initTheme(config)
	return model
}

func newInput(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Cursor.SetMode(cursor.CursorStatic)
	return input
}

// initTheme picks the starting color scheme.
func (model *Model) initTheme(config Config) {
	if mode, err := tui.ParseMode(config.ThemeMode); err == nil {
		model.fixedMode = true
		model.theme = tui.ThemeFor(mode)
		return
	}

	system := config.SystemMode
	if system == "" {
		system = tui.ModeDark
	}
	if model.modeStore != nil {
		stored, err := model.modeStore.Load()
		if err != nil {
			model.logger.Warn("reading stored color mode", "error", err)
		}
		model.storedMode = stored
	}
	model.applyResolution(tui.ResolveMode(model.storedMode, system))
}

// applyResolution switches to the startup mode and forgets a stored
// choice the system has moved away from since it was saved.
func (model *Model) applyResolution(resolution tui.Resolution) {
	model.theme = tui.ThemeFor(resolution.Mode)
	model.explicitMode = resolution.Explicit
	if !resolution.ClearStored {
		return
	}
	model.storedMode = ""
	if model.modeStore == nil {
		return
	}
	if err := model.modeStore.Clear(); err != nil {
		model.logger.Warn("clearing stored color mode", "error", err)
	}
}

// Init implements tea.Model: it issues the initial query and starts
// the court catalog walk.
func (model Model) Init() tea.Cmd {
	model.engine.Start()
	return tea.Batch(model.dispatch(), model.loadCatalog(), model.spinner.Tick)
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.resize()
		return model, nil

	case postedMsg:
		message.fn()
		return model, model.dispatch()

	case listResultMsg:
		if model.engine.Complete(message.response) {
			model.clampCursor()
		}
		return model, nil

	case detailResultMsg:
		if model.detail.Complete(message.response) {
			model.renderDetail()
		}
		return model, nil

	case catalogResultMsg:
		model.catalogLoading = false
		model.courts = message.courts
		model.catalogLoaded = message.err == nil
		if model.picker != nil && model.pickerKind == pickCourt {
			model.picker = tui.NewPicker(model.picker.Title, model.courtOptions(), model.currentCourt())
		}
		return model, nil

	case spinner.TickMsg:
		if !model.loading() {
			model.spinning = false
			return model, nil
		}
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(message)
		return model, cmd

	case logRecordMsg:
		model.statusSequence++
		model.status = message.Summary
		model.statusLevel = message.Level
		sequence := model.statusSequence
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{sequence: sequence}
		})

	case logRecordFadeMsg:
		if message.sequence == model.statusSequence {
			model.status = ""
		}
		return model, nil

	case tea.FocusMsg:
		if model.fixedMode || model.explicitMode || model.detectMode == nil {
			return model, nil
		}
		detect := model.detectMode
		return model, func() tea.Msg { return systemModeMsg{mode: detect()} }

	case systemModeMsg:
		if !model.fixedMode && !model.explicitMode {
			model.theme = tui.ThemeFor(message.mode)
			model.renderDetail()
		}
		return model, nil
	}
	return model, nil
}

// handleKey routes a keystroke by focus.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		model.engine.Close()
		return model, tea.Quit
	}

	switch model.focus {
	case FocusPicker:
		return model.handlePickerKeys(message)
	case FocusNumber, FocusKeyword, FocusQuery:
		return model.handleInputKeys(message)
	case FocusDetail:
		return model.handleDetailKeys(message)
	}
	return model.handleListKeys(message)
}

// handleListKeys processes keys while the list has focus.
func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	advanced := model.engine.State().Mode == casesearch.ModeAdvanced
	results := model.engine.Results()

	switch {
	case key.Matches(message, model.keys.Quit):
		model.engine.Close()
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-model.visibleHeight())
	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(model.visibleHeight())
	case key.Matches(message, model.keys.Home):
		model.moveCursor(-len(model.engine.Visible()))
	case key.Matches(message, model.keys.End):
		model.moveCursor(len(model.engine.Visible()))

	case key.Matches(message, model.keys.Open):
		return model, model.openSelected()

	case key.Matches(message, model.keys.FocusSearch):
		if advanced {
			return model, model.focusInput(FocusQuery)
		}
		return model, model.focusInput(FocusNumber)

	case key.Matches(message, model.keys.FocusKeyword):
		if !advanced {
			return model, model.focusInput(FocusKeyword)
		}

	case key.Matches(message, model.keys.Court):
		return model, model.openPicker(pickCourt)
	case key.Matches(message, model.keys.Degree):
		return model, model.openPicker(pickDegree)
	case key.Matches(message, model.keys.PageSize):
		return model, model.openPicker(pickPageSize)

	case key.Matches(message, model.keys.ToggleMode):
		if advanced {
			model.engine.SetMode(casesearch.ModeSimple)
		} else {
			model.engine.SetMode(casesearch.ModeAdvanced)
		}
		model.syncInputs()
		model.cursor, model.scrollOffset = 0, 0
		return model, model.dispatch()

	case key.Matches(message, model.keys.Clear):
		model.engine.Clear()
		model.syncInputs()
		model.cursor, model.scrollOffset = 0, 0
		return model, model.dispatch()

	case key.Matches(message, model.keys.LoadMore):
		if model.engine.ShowLoadMore() && model.engine.LoadMore() {
			return model, model.dispatch()
		}

	case key.Matches(message, model.keys.Retry):
		if results.Err != nil {
			model.engine.Retry()
			return model, model.dispatch()
		}

	case key.Matches(message, model.keys.ClearAndRetry):
		if results.Err != nil {
			model.engine.ClearAndRetry()
			model.syncInputs()
			model.cursor, model.scrollOffset = 0, 0
			return model, model.dispatch()
		}

	case key.Matches(message, model.keys.ToggleTheme):
		model.toggleTheme()
	}
	return model, nil
}

// handleDetailKeys processes keys while a case is open.
func (model Model) handleDetailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.engine.Close()
		return model, tea.Quit

	case key.Matches(message, model.keys.Back):
		model.detail.Close()
		model.focus = FocusList
		return model, nil

	case key.Matches(message, model.keys.Retry):
		if request, ok := model.detail.Refetch(); ok {
			return model, tea.Batch(model.fetchDetail(request), model.startSpinner())
		}

	case key.Matches(message, model.keys.ToggleTheme):
		model.toggleTheme()
		model.renderDetail()

	case key.Matches(message, model.keys.Home):
		model.viewport.GotoTop()
	case key.Matches(message, model.keys.End):
		model.viewport.GotoBottom()

	default:
		var cmd tea.Cmd
		model.viewport, cmd = model.viewport.Update(message)
		return model, cmd
	}
	return model, nil
}

// handleInputKeys processes keys while a filter input has focus.
func (model Model) handleInputKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.blurInputs()
		return model, nil

	case message.Type == tea.KeyEnter:
		model.blurInputs()
		if model.engine.SubmitAdvanced() {
			model.cursor, model.scrollOffset = 0, 0
			return model, model.dispatch()
		}
		return model, nil

	case key.Matches(message, model.keys.NextField):
		switch model.focus {
		case FocusNumber:
			return model, model.focusInput(FocusKeyword)
		case FocusKeyword:
			return model, model.focusInput(FocusNumber)
		}
		return model, nil
	}

	var cmd tea.Cmd
	switch model.focus {
	case FocusNumber:
		model.number, cmd = model.number.Update(message)
		if masked := caseno.Mask(model.number.Value()); masked != model.number.Value() {
			model.number.SetValue(masked)
			model.number.CursorEnd()
		}
		if value := model.number.Value(); value != model.engine.State().Simple.Search {
			model.engine.SetSearch(value)
			model.clampCursor()
		}
	case FocusKeyword:
		model.keyword, cmd = model.keyword.Update(message)
		if value := model.keyword.Value(); value != model.engine.State().Simple.Keyword {
			model.engine.SetKeyword(value)
			model.clampCursor()
		}
	case FocusQuery:
		model.query, cmd = model.query.Update(message)
		model.engine.SetAdvancedQuery(model.query.Value())
	}
	return model, tea.Batch(cmd, model.dispatch())
}

// handlePickerKeys processes keys while a picker is open.
func (model Model) handlePickerKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.closePicker()
	case key.Matches(message, model.keys.Up):
		model.picker.MoveUp()
	case key.Matches(message, model.keys.Down):
		model.picker.MoveDown()
	case message.Type == tea.KeyEnter:
		option, ok := model.picker.Selected()
		kind := model.pickerKind
		model.closePicker()
		if ok {
			return model, model.applyPick(kind, option.Value)
		}
	}
	return model, nil
}

// applyPick applies a picker selection to the active form.
func (model *Model) applyPick(kind pickerKind, value string) tea.Cmd {
	advanced := model.engine.State().Mode == casesearch.ModeAdvanced
	switch kind {
	case pickCourt:
		if advanced {
			model.engine.SetAdvancedCourt(value)
		} else {
			model.engine.SetCourt(value)
		}
	case pickDegree:
		if advanced {
			model.engine.SetAdvancedDegree(lawsuit.Degree(value))
		} else {
			model.engine.SetDegree(lawsuit.Degree(value))
		}
	case pickPageSize:
		size, err := strconv.Atoi(value)
		if err != nil {
			return nil
		}
		model.engine.SetPageSize(size)
		model.cursor, model.scrollOffset = 0, 0
	}
	return model.dispatch()
}

// openPicker opens the picker for kind. Opening the court picker
// before the catalog has loaded retries the walk.
func (model *Model) openPicker(kind pickerKind) tea.Cmd {
	var cmd tea.Cmd
	switch kind {
	case pickCourt:
		model.picker = tui.NewPicker("Tribunal", model.courtOptions(), model.currentCourt())
		if !model.catalogLoaded && !model.catalogLoading {
			model.catalogLoading = true
			cmd = model.loadCatalog()
		}
	case pickDegree:
		options := []tui.PickerOption{{Label: "Todos", Value: ""}}
		for _, degree := range lawsuit.Degrees {
			options = append(options, tui.PickerOption{Label: degree.Label(), Value: string(degree)})
		}
		model.picker = tui.NewPicker("Grau", options, string(model.currentDegree()))
	case pickPageSize:
		var options []tui.PickerOption
		for _, size := range model.pageSizes {
			value := strconv.Itoa(size)
			options = append(options, tui.PickerOption{Label: value + " por página", Value: value})
		}
		model.picker = tui.NewPicker("Itens por página", options, strconv.Itoa(model.engine.State().PageSize))
	}
	model.pickerKind = kind
	model.priorFocus = model.focus
	model.focus = FocusPicker
	return cmd
}

func (model *Model) closePicker() {
	model.picker = nil
	model.focus = model.priorFocus
}

// courtOptions lists the catalog courts, or while the catalog is
// unavailable the courts it found plus those in the loaded list.
func (model *Model) courtOptions() []tui.PickerOption {
	courts := slices.Clone(model.courts)
	if !model.catalogLoaded {
		courts = append(courts, casesearch.CourtsOf(model.engine.Results().Items)...)
		slices.Sort(courts)
		courts = slices.Compact(courts)
	}
	options := []tui.PickerOption{{Label: "Todos", Value: ""}}
	for _, court := range courts {
		options = append(options, tui.PickerOption{Label: court, Value: court})
	}
	return options
}

func (model *Model) currentCourt() string {
	state := model.engine.State()
	if state.Mode == casesearch.ModeAdvanced {
		return state.Advanced.Court
	}
	return state.Simple.Court
}

func (model *Model) currentDegree() lawsuit.Degree {
	state := model.engine.State()
	if state.Mode == casesearch.ModeAdvanced {
		return state.Advanced.Degree
	}
	return state.Simple.Degree
}

// focusInput gives keyboard focus to one of the filter inputs.
func (model *Model) focusInput(region FocusRegion) tea.Cmd {
	model.number.Blur()
	model.keyword.Blur()
	model.query.Blur()
	model.focus = region
	switch region {
	case FocusNumber:
		return model.number.Focus()
	case FocusKeyword:
		return model.keyword.Focus()
	case FocusQuery:
		return model.query.Focus()
	}
	return nil
}

func (model *Model) blurInputs() {
	model.number.Blur()
	model.keyword.Blur()
	model.query.Blur()
	model.focus = FocusList
}

// syncInputs copies the engine's form values into the inputs after the
// engine reset them.
func (model *Model) syncInputs() {
	state := model.engine.State()
	model.number.SetValue(state.Simple.Search)
	model.keyword.SetValue(state.Simple.Keyword)
	model.query.SetValue(state.Advanced.Query)
}

// openSelected opens the case under the cursor.
func (model *Model) openSelected() tea.Cmd {
	items := model.engine.Visible()
	if model.cursor < 0 || model.cursor >= len(items) {
		return nil
	}
	request := model.detail.Open(items[model.cursor].Number)
	model.focus = FocusDetail
	model.viewport.SetContent("")
	model.viewport.GotoTop()
	return tea.Batch(model.fetchDetail(request), model.startSpinner())
}

// toggleTheme flips the scheme and remembers the choice.
func (model *Model) toggleTheme() {
	mode := model.theme.Mode.Toggle()
	model.theme = tui.ThemeFor(mode)
	if model.fixedMode {
		return
	}
	model.storedMode = mode
	model.explicitMode = true
	if model.modeStore == nil {
		return
	}
	if err := model.modeStore.Save(mode); err != nil {
		model.logger.Warn("saving color mode", "error", err)
	}
}

// dispatch turns the engine's queued requests into commands.
func (model *Model) dispatch() tea.Cmd {
	var cmds []tea.Cmd
	for _, request := range model.engine.Drain() {
		cmds = append(cmds, model.fetchList(request))
	}
	if len(cmds) > 0 {
		cmds = append(cmds, model.startSpinner())
	}
	return tea.Batch(cmds...)
}

// startSpinner returns the first spinner tick unless the spinner is
// already running.
func (model *Model) startSpinner() tea.Cmd {
	if model.spinning {
		return nil
	}
	model.spinning = true
	return model.spinner.Tick
}

func (model *Model) loading() bool {
	return model.engine.Results().Loading || model.detail.Loading()
}

func (model *Model) fetchList(request casesearch.Request) tea.Cmd {
	source, ctx := model.source, model.ctx
	return func() tea.Msg {
		page, err := source.List(ctx, request.Params)
		return listResultMsg{response: casesearch.Response{Request: request, Page: page, Err: err}}
	}
}

func (model *Model) fetchDetail(request casesearch.DetailRequest) tea.Cmd {
	source, ctx := model.source, model.ctx
	return func() tea.Msg {
		detail, err := source.Get(ctx, request.Number)
		return detailResultMsg{response: casesearch.DetailResponse{Request: request, Detail: detail, Err: err}}
	}
}

// loadCatalog walks the court catalog, falling back to the courts of
// the list loaded right now.
func (model *Model) loadCatalog() tea.Cmd {
	catalog, ctx := model.catalog, model.ctx
	fallback := model.engine.Results().Items
	return func() tea.Msg {
		courts, err := catalog.Load(ctx, fallback)
		return catalogResultMsg{courts: courts, err: err}
	}
}

// moveCursor moves the list selection by delta rows, clamped.
func (model *Model) moveCursor(delta int) {
	model.cursor += delta
	model.clampCursor()
}

// clampCursor keeps the selection and scroll window inside the
// visible list.
func (model *Model) clampCursor() {
	count := len(model.engine.Visible())
	model.cursor = max(0, min(model.cursor, count-1))

	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}
	model.scrollOffset = max(0, min(model.scrollOffset, count-visible))
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

// resize recomputes pane sizes after the terminal size changed.
func (model *Model) resize() {
	inputWidth := max(10, model.width/4)
	model.number.Width = caseno.Length
	model.keyword.Width = inputWidth
	model.query.Width = inputWidth * 2
	model.viewport.Width = max(1, model.width-1)
	model.viewport.Height = max(1, model.visibleHeight())
	model.clampCursor()
	model.renderDetail()
}

// visibleHeight is the number of content rows between the chrome:
// filter bar and message line above, separator and help line below.
func (model *Model) visibleHeight() int {
	return model.height - 4
}
