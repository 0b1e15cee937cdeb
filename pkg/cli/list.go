/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mangocompatdelight/datagen/pkg/config"
	"github.com/mangocompatdelight/datagen/pkg/generator"
	"github.com/mangocompatdelight/datagen/pkg/serializer"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List the recipe documents generate would write",
		Description: `Builds every recipe from the configuration and prints its id and target
path relative to the output root. Nothing is written.

# Examples

  datagen list --config src/tool/data.toml --format table`,
		Flags: []cli.Flag{
			configFlag(),
			outputDirFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			reg, err := generator.New().Generate(ctx, cfg)
			if err != nil {
				return err
			}

			listing, err := generator.List(reg, cmd.String("output"), version)
			if err != nil {
				return err
			}

			ser := serializer.NewStdoutWriter(outFormat)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, listing)
		},
	}
}
