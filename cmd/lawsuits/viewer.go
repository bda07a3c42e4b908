// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/lawsuits/lib/casesearch"
	"github.com/bureau-foundation/lawsuits/lib/caseui"
	"github.com/bureau-foundation/lawsuits/lib/clock"
	"github.com/bureau-foundation/lawsuits/lib/tui"
)

// runViewer runs the interactive viewer until the user quits.
//
// Background logging (request failures, catalog fallbacks) is routed
// through a TUILogHandler that shows warnings and errors in the status
// bar instead of writing to stderr, which would corrupt the alt-screen
// display. --log-output adds a JSON file capturing every record.
func runViewer(ctx context.Context, env *environment) error {
	tuiHandler := caseui.NewTUILogHandler(max(env.level, slog.LevelWarn))

	var handler slog.Handler = tuiHandler
	if env.options.logOutput != "" {
		fileHandler, closeFile, err := openFileLogHandler(env.options.logOutput)
		if err != nil {
			return Validation("cannot open log file %s: %w", env.options.logOutput, err)
		}
		defer closeFile()
		handler = fanoutHandler{tuiHandler, fileHandler}
	}
	logger := slog.New(handler)

	client, err := newClient(env.config, logger)
	if err != nil {
		return err
	}
	delay, err := env.config.DebounceDelay()
	if err != nil {
		return Validation("%w", err)
	}

	// The terminal is queried before bubbletea takes over stdin.
	systemMode := tui.ModeDark
	var detectMode func() tui.Mode
	if env.config.Theme.Mode == "auto" {
		systemMode = tui.DetectSystemMode()
		detectMode = tui.DetectSystemMode
	}
	var modeStore tui.ModeStore
	if env.config.Theme.StateFile != "" {
		modeStore = tui.FileModeStore{Path: env.config.Theme.StateFile}
	}

	poster := caseui.NewPoster()
	model := caseui.NewModel(caseui.Config{
		Source:          client,
		Catalog:         casesearch.NewCatalog(client, logger).WithPageSize(env.config.Search.CatalogPageSize),
		Context:         ctx,
		PageSize:        env.config.Search.PageSize,
		PageSizeOptions: env.config.Search.PageSizeOptions,
		DebounceDelay:   delay,
		Clock:           clock.Real(),
		Post:            poster.Post,
		ThemeMode:       env.config.Theme.Mode,
		ModeStore:       modeStore,
		SystemMode:      systemMode,
		DetectMode:      detectMode,
		Logger:          logger,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	poster.SetProgram(program)
	tuiHandler.SetProgram(program)

	logger.Debug("viewer starting", "base_url", client.BaseURL(), "page_size", env.config.Search.PageSize)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
