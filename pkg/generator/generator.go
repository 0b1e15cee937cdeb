// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/mangocompatdelight/datagen/pkg/config"
	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/identifier"
	"github.com/mangocompatdelight/datagen/pkg/item"
	"github.com/mangocompatdelight/datagen/pkg/recipe"
	"github.com/mangocompatdelight/datagen/pkg/record"
)

const (
	// LogSuffix turns a wood family into its log item.
	LogSuffix = "_log"
	// suffixSeparator joins a wood family and a strip output suffix.
	suffixSeparator = "_"
)

// Generator expands a configuration into recipe records.
//
// Settings left unset by options are taken from the configuration passed to
// Generate.
type Generator struct {
	namespace   string
	byproduct   *identifier.Identifier
	requires    []string
	requiresSet bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithNamespace places generated record ids in namespace.
func WithNamespace(namespace string) Option {
	return func(g *Generator) {
		g.namespace = namespace
	}
}

// WithByproduct sets the secondary result of every strip recipe.
func WithByproduct(id identifier.Identifier) Option {
	return func(g *Generator) {
		g.byproduct = &id
	}
}

// WithRequires conditions every record on the given mods being loaded.
func WithRequires(mods ...string) Option {
	return func(g *Generator) {
		g.requires = slices.Clone(mods)
		g.requiresSet = true
	}
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// settings is the resolved view of a Generator for one configuration.
type settings struct {
	namespace string
	byproduct item.Item
	requires  []string
}

func (g *Generator) resolve(cfg *config.Config) (settings, error) {
	s := settings{
		namespace: cfg.Namespace(),
		requires:  cfg.Requires(),
	}
	if g.namespace != "" {
		s.namespace = g.namespace
	}
	if !identifier.ValidComponent(s.namespace) {
		return settings{}, apperrors.NewWithContext(apperrors.ErrCodeMalformedIdentifier,
			"generator namespace contains invalid characters", map[string]any{"input": s.namespace})
	}
	if g.requiresSet {
		s.requires = slices.Clone(g.requires)
	}

	byproduct := cfg.Byproduct()
	if g.byproduct != nil {
		byproduct = *g.byproduct
	}
	b, err := item.New(byproduct, 1)
	if err != nil {
		return settings{}, err
	}
	s.byproduct = b

	return s, nil
}

// Generate builds a fresh registry holding one strip recipe per
// (suffix, log) pair of cfg. Suffixes are visited in sorted order and logs in
// configuration order. The registry is validated before it is returned, so a
// configuration producing two records with the same id fails here with
// DUPLICATE_RECORD_ID.
func (g *Generator) Generate(ctx context.Context, cfg *config.Config) (*record.Registry, error) {
	start := time.Now()

	s, err := g.resolve(cfg)
	if err != nil {
		generationErrors.WithLabelValues(string(apperrors.CodeOf(err))).Inc()
		return nil, err
	}

	registry := record.NewRegistry()
	factory := recipe.NewFactory(registry)

	for _, suffix := range cfg.StripSuffixes() {
		for _, log := range cfg.StripLogs(suffix) {
			if err := ctx.Err(); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "generation cancelled", err)
			}

			rec, err := s.strip(factory, suffix, log)
			if err != nil {
				generationErrors.WithLabelValues(string(apperrors.CodeOf(err))).Inc()
				return nil, apperrors.WrapWithContext(apperrors.CodeOf(err),
					"failed to generate strip recipe", err,
					map[string]any{"suffix": suffix, "log": log})
			}

			recordsGenerated.WithLabelValues(suffix).Inc()
			slog.Debug("record generated",
				"id", rec.ID().String(),
				"suffix", suffix,
				"log", log)
		}
	}

	if err := registry.Validate(); err != nil {
		generationErrors.WithLabelValues(string(apperrors.CodeOf(err))).Inc()
		return nil, err
	}

	generateDuration.Observe(time.Since(start).Seconds())
	slog.Info("records generated",
		"count", registry.Len(),
		"namespace", s.namespace,
		"duration", time.Since(start).String())

	return registry, nil
}

// strip appends the recipe stripping log into its suffix form.
//
// For log "oak" and suffix "stripped_log" it produces a recipe with id
// {namespace}:minecraft/oak_log turning minecraft:oak_log into
// minecraft:oak_stripped_log plus the byproduct.
func (s settings) strip(factory *recipe.Factory, suffix, log string) (*record.Record, error) {
	base, err := identifier.Parse(log)
	if err != nil {
		return nil, err
	}
	input, err := base.WithSuffix(LogSuffix)
	if err != nil {
		return nil, err
	}
	output, err := base.WithSuffix(suffixSeparator + suffix)
	if err != nil {
		return nil, err
	}

	in, err := item.New(input, 1)
	if err != nil {
		return nil, err
	}
	out, err := item.New(output, 1)
	if err != nil {
		return nil, err
	}

	rec, err := factory.AxeStrip([]item.Item{out, s.byproduct}, in)
	if err != nil {
		return nil, err
	}

	id, err := identifier.Of(s.namespace, input.Namespace()+"/"+input.Path())
	if err != nil {
		return nil, err
	}
	rec.SetID(id)

	if ns := input.Namespace(); ns != identifier.DefaultNamespace {
		rec.Auto(ns)
	}
	for _, mod := range s.requires {
		if mod == input.Namespace() {
			continue
		}
		rec.Auto(mod)
	}

	return rec, nil
}
