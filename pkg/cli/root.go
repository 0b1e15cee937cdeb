/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mangocompatdelight/datagen/pkg/config"
	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/logging"
	"github.com/mangocompatdelight/datagen/pkg/serializer"
)

const (
	name           = "datagen"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared by several commands. Parsed state lives on the flag, so each
// command gets a fresh instance.

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   config.DefaultPath,
		Sources: cli.EnvVars("DATAGEN_CONFIG"),
		Usage:   "Path to the generator configuration (.toml, .yaml or .json)",
	}
}

func outputDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   config.DefaultOutputRoot,
		Sources: cli.EnvVars("DATAGEN_OUTPUT"),
		Usage:   "Datapack root the recipe documents are written under",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Report format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Usage:                 "Generate compatibility recipes for the mangocompatdelight datapack",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `datagen turns a small configuration of wood families into the
cutting-board recipe documents the datapack ships:

  generate - write one JSON document per recipe under the datapack root
  list     - print every recipe id and its target path without writing`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvLogLevel),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			listCmd(),
		},
	}
}

// Execute runs the root command with os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		logError(err)
		stop()
		os.Exit(1)
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// logError logs err with the code and context of its outermost structured error.
func logError(err error) {
	var se *apperrors.StructuredError
	if errors.As(err, &se) {
		slog.Error(se.Message, "code", se.Code, "context", se.Context, "error", err)
		return
	}
	slog.Error("command failed", "error", err)
}
