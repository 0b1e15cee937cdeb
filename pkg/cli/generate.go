/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/urfave/cli/v3"

	"github.com/mangocompatdelight/datagen/pkg/config"
	"github.com/mangocompatdelight/datagen/pkg/generator"
	"github.com/mangocompatdelight/datagen/pkg/oci"
	"github.com/mangocompatdelight/datagen/pkg/serializer"
)

// envSourceDateEpoch pins the manifest creation time of published artifacts.
const envSourceDateEpoch = "SOURCE_DATE_EPOCH"

// generateCmdOptions holds parsed options for the generate command.
type generateCmdOptions struct {
	configPath  string
	outputDir   string
	namespace   string
	format      serializer.Format
	report      string
	checksums   bool
	metricsFile string
	publish     *oci.Reference
	plainHTTP   bool
	insecureTLS bool
	watch       bool
}

// parseGenerateCmdOptions parses and validates command options.
func parseGenerateCmdOptions(cmd *cli.Command) (*generateCmdOptions, error) {
	opts := &generateCmdOptions{
		configPath:  cmd.String("config"),
		outputDir:   cmd.String("output"),
		namespace:   cmd.String("namespace"),
		report:      cmd.String("report"),
		checksums:   cmd.Bool("checksums"),
		metricsFile: cmd.String("metrics-file"),
		plainHTTP:   cmd.Bool("plain-http"),
		insecureTLS: cmd.Bool("insecure-tls"),
		watch:       cmd.Bool("watch"),
	}

	var err error
	if opts.format, err = parseOutputFormat(cmd); err != nil {
		return nil, err
	}

	if opts.outputDir == "" {
		return nil, fmt.Errorf("--output must not be empty")
	}

	if target := cmd.String("publish"); target != "" {
		if opts.publish, err = oci.ParseReference(target); err != nil {
			return nil, fmt.Errorf("invalid --publish target: %w", err)
		}
	} else if opts.plainHTTP || opts.insecureTLS {
		return nil, fmt.Errorf("--plain-http and --insecure-tls require --publish")
	}

	return opts, nil
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate recipe documents from the configuration",
		Description: `Reads the configuration, builds one cutting-board recipe per configured
log and writes each one as an indented JSON document to:

  <output>/<namespace>/recipe/<log namespace>/<log>.json

A summary report is written to stdout (or --report) in the chosen format.

# Examples

Generate into the default datapack root:
  datagen generate

Write checksums and export metrics for a textfile collector:
  datagen generate --checksums --metrics-file /var/lib/node_exporter/datagen.prom

Publish the generated tree as an OCI artifact tagged with the pack version:
  datagen generate --publish oci://ghcr.io/mangocompatdelight/datapack

Regenerate whenever the configuration changes:
  datagen generate --watch`,
		Flags: []cli.Flag{
			configFlag(),
			outputDirFlag(),
			&cli.StringFlag{
				Name:  "namespace",
				Usage: "Override the namespace owning generated record ids",
			},
			&cli.BoolFlag{
				Name:  "checksums",
				Usage: "Write a SHA256 checksum manifest at the output root",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "Write the generation report to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics in text format to this file",
			},
			&cli.StringFlag{
				Name:  "publish",
				Usage: "Push the output root as an OCI artifact (format: oci://registry/repository[:tag])",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the registry (requires --publish)",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the registry (requires --publish)",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Keep running and regenerate whenever the configuration changes",
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseGenerateCmdOptions(cmd)
			if err != nil {
				return err
			}

			if !opts.watch {
				return runGenerate(ctx, opts)
			}

			if err := runGenerate(ctx, opts); err != nil {
				logError(err)
			}
			return watchConfig(ctx, opts.configPath, func(ctx context.Context) error {
				return runGenerate(ctx, opts)
			})
		},
	}
}

// runGenerate performs one load, generate, emit and publish pass.
func runGenerate(ctx context.Context, opts *generateCmdOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	var genOpts []generator.Option
	if opts.namespace != "" {
		genOpts = append(genOpts, generator.WithNamespace(opts.namespace))
	}

	reg, err := generator.New(genOpts...).Generate(ctx, cfg)
	if err != nil {
		return err
	}

	emitOpts := []generator.EmitOption{generator.WithToolVersion(version)}
	if opts.checksums {
		emitOpts = append(emitOpts, generator.WithChecksums())
	}

	out, err := generator.Emit(ctx, reg, opts.outputDir, emitOpts...)
	if err != nil {
		return err
	}

	if opts.metricsFile != "" {
		if err := generator.WriteMetrics(opts.metricsFile); err != nil {
			return err
		}
	}

	if opts.publish != nil {
		if out.Publication, err = publish(ctx, cfg, opts); err != nil {
			return err
		}
	}

	slog.Info("generation complete", "summary", out.Summary())

	ser := serializer.NewFileWriterOrStdout(opts.format, opts.report)
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, out)
}

// publish pushes the output root, tagging it with the pack version when the
// target names no tag.
func publish(ctx context.Context, cfg *config.Config, opts *generateCmdOptions) (*generator.Publication, error) {
	created, err := sourceDateEpoch()
	if err != nil {
		return nil, err
	}

	var packTag string
	annotations := map[string]string{}
	if v, ok := cfg.Version(); ok {
		packTag = v.Tag()
		annotations[ociv1.AnnotationVersion] = v.String()
	}

	res, err := oci.Push(ctx, oci.PushOptions{
		SourceDir:             opts.outputDir,
		Reference:             opts.publish.WithDefaultTag(packTag),
		Annotations:           annotations,
		PlainHTTP:             opts.plainHTTP,
		InsecureTLS:           opts.insecureTLS,
		ReproducibleTimestamp: created,
	})
	if err != nil {
		return nil, err
	}

	return &generator.Publication{
		Reference: res.Reference,
		Digest:    res.Digest,
	}, nil
}

// sourceDateEpoch returns SOURCE_DATE_EPOCH as an RFC 3339 timestamp, or ""
// when it is unset.
func sourceDateEpoch() (string, error) {
	raw := os.Getenv(envSourceDateEpoch)
	if raw == "" {
		return "", nil
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q: %w", envSourceDateEpoch, raw, err)
	}
	return time.Unix(secs, 0).UTC().Format(time.RFC3339), nil
}
