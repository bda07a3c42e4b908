// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/lawsuits/lib/caseno"
	"github.com/bureau-foundation/lawsuits/lib/casesearch"
	"github.com/bureau-foundation/lawsuits/lib/caseui"
	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
	"github.com/bureau-foundation/lawsuits/lib/lawsuitapi"
	"github.com/bureau-foundation/lawsuits/lib/tui"
)

// listRow is the --json form of one list item.
type listRow struct {
	Number           string `json:"number"`
	Court            string `json:"court"`
	Degree           string `json:"degree"`
	PrimaryClass     string `json:"primary_class,omitempty"`
	PrimarySubject   string `json:"primary_subject,omitempty"`
	LastMovementDate string `json:"last_movement_date,omitempty"`
	LastMovement     string `json:"last_movement,omitempty"`
}

type listOutput struct {
	Items      []listRow `json:"items"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// runList implements "lawsuits list": one or more pages of a search.
func runList(ctx context.Context, env *environment, args []string) error {
	flagSet := pflag.NewFlagSet("lawsuits list", pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	query := flagSet.StringP("query", "q", "", "case number or keyword (default: the positional arguments)")
	court := flagSet.String("court", "", "court code, e.g. TJSP")
	degree := flagSet.String("degree", "", "1, 2 or superior")
	limit := flagSet.Int("limit", env.config.Search.PageSize, "results per page (1-100)")
	cursor := flagSet.String("cursor", "", "continue from a cursor printed by an earlier call")
	pages := flagSet.Int("pages", 1, "pages to fetch; 0 fetches every page")
	jsonOutput := flagSet.Bool("json", false, "output as JSON")
	if err := flagSet.Parse(args); err != nil {
		return Validation("list: %w", err)
	}

	text := *query
	if text == "" {
		text = strings.Join(flagSet.Args(), " ")
	}
	parsedDegree, err := parseDegree(*degree)
	if err != nil {
		return err
	}
	if *limit < 1 || *limit > lawsuit.MaxLimit {
		return Validation("list: --limit must be between 1 and %d", lawsuit.MaxLimit)
	}
	if *pages < 0 {
		return Validation("list: --pages must not be negative")
	}

	logger := newCommandLogger(env.stderr, env.level).With("command", "list")
	client, err := newClient(env.config, logger)
	if err != nil {
		return err
	}

	iterator := lawsuitapi.Pages(client, lawsuit.ListParams{
		Query:  strings.TrimSpace(text),
		Court:  strings.ToUpper(strings.TrimSpace(*court)),
		Degree: parsedDegree,
		Cursor: *cursor,
		Limit:  *limit,
	})
	var items []lawsuit.ListItem
	for *pages == 0 || iterator.PageCount() < *pages {
		page, err := iterator.Next(ctx)
		if err != nil {
			return apiFailure("listing lawsuits", err)
		}
		if page == nil {
			break
		}
		items = append(items, page...)
	}

	output := listOutput{Items: make([]listRow, 0, len(items)), NextCursor: iterator.Cursor()}
	for _, item := range items {
		row := listRow{
			Number:         item.Number,
			Court:          item.Court,
			Degree:         item.Degree.Label(),
			PrimaryClass:   item.PrimaryClass,
			PrimarySubject: item.PrimarySubject,
		}
		if item.LastMovement != nil {
			row.LastMovementDate = lawsuit.FormatDate(item.LastMovement.Date)
			row.LastMovement = item.LastMovement.Description
		}
		output.Items = append(output.Items, row)
	}

	if *jsonOutput {
		return writeJSON(env, output)
	}

	if len(output.Items) == 0 {
		fmt.Fprintln(env.stdout, "Nenhum processo encontrado.")
		return nil
	}
	writer := tabwriter.NewWriter(env.stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "NÚMERO\tTRIBUNAL\tGRAU\tCLASSE\tÚLTIMO MOVIMENTO\n")
	for _, row := range output.Items {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			row.Number,
			row.Court,
			row.Degree,
			truncate(row.PrimaryClass, 40),
			truncate(strings.TrimSpace(row.LastMovementDate+" "+row.LastMovement), 60),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	if output.NextCursor != "" {
		fmt.Fprintf(env.stderr, "more results: --cursor %s\n", output.NextCursor)
	}
	return nil
}

// runShow implements "lawsuits show <number>".
func runShow(ctx context.Context, env *environment, args []string) error {
	flagSet := pflag.NewFlagSet("lawsuits show", pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	width := flagSet.Int("width", 0, "wrap width (default: terminal width or 100)")
	if err := flagSet.Parse(args); err != nil {
		return Validation("show: %w", err)
	}
	if flagSet.NArg() != 1 {
		return Validation("show: expected exactly one case number, got %d arguments", flagSet.NArg())
	}

	number := normalizeNumber(flagSet.Arg(0))
	if !caseno.IsComplete(number) {
		return Validation("show: %q is not a case number (format 0000000-00.0000.0.00.0000)", flagSet.Arg(0))
	}

	logger := newCommandLogger(env.stderr, env.level).With("command", "show", "number", number)
	if parsed, err := caseno.Parse(number); err == nil && !parsed.ChecksumValid() {
		logger.Warn("check digits do not match", "expected", parsed.ExpectedCheckDigits())
	}

	client, err := newClient(env.config, logger)
	if err != nil {
		return err
	}
	detail, err := client.Get(ctx, number)
	if err != nil {
		return apiFailure("fetching "+number, err)
	}

	wrap := *width
	if wrap <= 0 {
		wrap = outputWidth(env.stdout)
	}
	fmt.Fprintln(env.stdout, caseui.DetailBody(detail, tui.ThemeFor(commandMode(env)), wrap))
	return nil
}

// runTribunals implements "lawsuits tribunals": the court catalog.
func runTribunals(ctx context.Context, env *environment, args []string) error {
	flagSet := pflag.NewFlagSet("lawsuits tribunals", pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	jsonOutput := flagSet.Bool("json", false, "output as JSON")
	if err := flagSet.Parse(args); err != nil {
		return Validation("tribunals: %w", err)
	}

	logger := newCommandLogger(env.stderr, env.level).With("command", "tribunals")
	client, err := newClient(env.config, logger)
	if err != nil {
		return err
	}
	catalog := casesearch.NewCatalog(client, logger).WithPageSize(env.config.Search.CatalogPageSize)
	courts, err := catalog.Load(ctx, nil)
	if err != nil {
		return apiFailure("loading the court catalog", err)
	}

	if *jsonOutput {
		return writeJSON(env, courts)
	}
	for _, court := range courts {
		fmt.Fprintln(env.stdout, court)
	}
	return nil
}

// parseDegree accepts the forms a user is likely to type.
func parseDegree(value string) (lawsuit.Degree, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return lawsuit.DegreeUnset, nil
	case "1", "g1", "first":
		return lawsuit.DegreeFirst, nil
	case "2", "g2", "second":
		return lawsuit.DegreeSecond, nil
	case "sup", "superior":
		return lawsuit.DegreeSuperior, nil
	default:
		return "", Validation("unknown degree %q (want 1, 2 or superior)", value)
	}
}

// normalizeNumber masks a bare run of digits into the canonical case
// number format and leaves anything else as typed.
func normalizeNumber(value string) string {
	value = strings.TrimSpace(value)
	if digits := caseno.Digits(value); len(digits) == caseno.DigitCount && len(digits) == len(value) {
		return caseno.Mask(digits)
	}
	return value
}

// commandMode picks the color scheme for printed output.
func commandMode(env *environment) tui.Mode {
	if mode, err := tui.ParseMode(env.config.Theme.Mode); err == nil {
		return mode
	}
	if isTerminal(env.stdout) {
		return tui.DetectSystemMode()
	}
	return tui.ModeDark
}

func outputWidth(output io.Writer) int {
	if file, ok := output.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 100
}

// writeJSON writes value as indented JSON, syntax-highlighted when
// stdout is a terminal.
func writeJSON(env *environment, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return Internal("encoding JSON: %w", err)
	}
	data = append(data, '\n')
	if isTerminal(env.stdout) {
		return highlightJSON(env.stdout, data, commandMode(env))
	}
	_, err = env.stdout.Write(data)
	return err
}

func highlightJSON(output io.Writer, data []byte, mode tui.Mode) error {
	style := "monokai"
	if mode == tui.ModeLight {
		style = "github"
	}
	return quick.Highlight(output, string(data), "json", "terminal256", style)
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
