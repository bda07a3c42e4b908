// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// lawsuits is a terminal front end for the lawsuit search API.
//
// Without a command it opens the interactive viewer: search by case
// number or keyword, filter by court and degree, page through results
// and open a case for its parties and last movement. The list, show
// and tribunals commands run one query and print the result, for
// scripts and quick lookups.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/lawsuits/lib/config"
	"github.com/bureau-foundation/lawsuits/lib/lawsuitapi"
	"github.com/bureau-foundation/lawsuits/lib/telemetry"
	"github.com/bureau-foundation/lawsuits/lib/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// options are the global flags, accepted before the command name.
type options struct {
	configPath string
	baseURL    string
	logOutput  string
	logLevel   string
	theme      string
	pageSize   int
}

// environment is what every command runs with.
type environment struct {
	options options
	config  *config.Config
	level   slog.Level
	stdout  io.Writer
	stderr  io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("lawsuits", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "configuration file, YAML or JSONC (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&opts.baseURL, "base-url", "", "lawsuit API root URL")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file (viewer only)")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flagSet.StringVar(&opts.theme, "theme", "", "auto, dark or light")
	flagSet.IntVar(&opts.pageSize, "page-size", 0, "initial page size")
	showVersion := flagSet.Bool("version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stderr, flagSet)
			return nil
		}
		return Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if *showVersion {
		fmt.Fprintf(stdout, "lawsuits %s\n", version.Full())
		return nil
	}

	cfg, err := loadConfig(opts, flagSet)
	if err != nil {
		return err
	}
	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	env := &environment{options: opts, config: cfg, level: level, stdout: stdout, stderr: stderr}

	_, shutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version.Short(),
		Endpoint:       cfg.Telemetry.Endpoint,
	})
	if err != nil {
		return Internal("starting telemetry: %w", err)
	}
	defer func() {
		shutdownContext, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdown(shutdownContext)
	}()

	rest := flagSet.Args()
	if len(rest) == 0 {
		return runViewer(ctx, env)
	}
	switch rest[0] {
	case "list":
		return runList(ctx, env, rest[1:])
	case "show":
		return runShow(ctx, env, rest[1:])
	case "tribunals":
		return runTribunals(ctx, env, rest[1:])
	case "help":
		printHelp(stderr, flagSet)
		return nil
	default:
		return Validation("unknown command %q (want list, show or tribunals)", rest[0])
	}
}

// loadConfig reads the configuration file and applies the flags that
// were given on top of it.
func loadConfig(opts options, flagSet *pflag.FlagSet) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, Validation("%w", err)
	}

	if flagSet.Changed("base-url") {
		cfg.API.BaseURL = opts.baseURL
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flagSet.Changed("theme") {
		cfg.Theme.Mode = opts.theme
	}
	if flagSet.Changed("page-size") {
		cfg.Search.PageSize = opts.pageSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newClient builds the API client for cfg. Requests are traced when
// telemetry is enabled.
func newClient(cfg *config.Config, logger *slog.Logger) (*lawsuitapi.Client, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, Validation("%w", err)
	}
	userAgent := cfg.API.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	client, err := lawsuitapi.NewClient(lawsuitapi.Config{
		BaseURL: cfg.API.BaseURL,
		HTTPClient: &http.Client{
			Transport: lawsuitapi.NewTransport(nil, cfg.Telemetry.Enabled),
			Timeout:   timeout,
		},
		UserAgent: userAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, Validation("%w", err)
	}
	return client, nil
}

func printHelp(output io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(output, `lawsuits: search and browse court cases from the terminal.

Usage:
  lawsuits [flags]                        open the interactive viewer
  lawsuits [flags] list [list flags]      print one page of results
  lawsuits [flags] show <number>          print a case
  lawsuits [flags] tribunals              print the known court codes

Examples:
  # Open the viewer against a local API
  lawsuits --base-url http://localhost:3000

  # Cases of the São Paulo state court mentioning "fraude"
  lawsuits list --court TJSP fraude

  # A single case; punctuation is optional
  lawsuits show 00012347120248260100

Flags:
`)
	flagSet.SetOutput(output)
	flagSet.PrintDefaults()
}
