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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sort"

	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/identifier"
	"github.com/mangocompatdelight/datagen/pkg/serializer"
	"github.com/mangocompatdelight/datagen/pkg/version"
)

const (
	// DefaultPath is where the generator looks for its configuration.
	DefaultPath = "src/tool/data.toml"
	// DefaultOutputRoot is the datapack root generated documents are written under.
	DefaultOutputRoot = "src/main/data"
	// DefaultNamespace owns every generated record id.
	DefaultNamespace = "mangocompatdelight"
	// DefaultByproduct is the secondary result of every strip recipe.
	DefaultByproduct = "farmersdelight:tree_bark"
)

// Config is the generator input. It is read-only once Load returns.
type Config struct {
	Pack   Pack    `toml:"pack" yaml:"pack" json:"pack"`
	Recipe *Recipe `toml:"recipe" yaml:"recipe" json:"recipe"`

	byproduct identifier.Identifier
	version   *version.Version
}

// Pack describes the generated datapack.
type Pack struct {
	Namespace string `toml:"namespace" yaml:"namespace" json:"namespace"`
	Version   string `toml:"version" yaml:"version" json:"version"`
}

// Recipe holds the recipe families to generate.
type Recipe struct {
	// Requires lists mod ids every generated record is conditioned on.
	Requires []string `toml:"requires" yaml:"requires" json:"requires"`
	// Byproduct is added as the last result of every strip recipe.
	Byproduct string `toml:"byproduct" yaml:"byproduct" json:"byproduct"`
	// Strip maps an output suffix (e.g. "stripped_log") to the log families
	// that produce it.
	Strip map[string][]string `toml:"strip" yaml:"strip" json:"strip"`
}

// Load reads the configuration at path. The format follows the file
// extension (.toml, .yaml/.yml or .json) and unknown keys are rejected.
//
// A missing file fails with CONFIG_MISSING; anything that does not decode
// into the schema or fails validation fails with CONFIG_MALFORMED.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeConfigMissing,
				"configuration file not found", err, map[string]any{"path": path})
		}
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeConfigMissing,
			"configuration file not accessible", err, map[string]any{"path": path})
	}

	cfg, err := serializer.FromFile[Config](path, serializer.WithKnownFields())
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeConfigMalformed,
			"failed to decode configuration", err, map[string]any{"path": path})
	}

	setDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeConfigMalformed,
			"invalid configuration", err, map[string]any{"path": path})
	}

	slog.Debug("configuration loaded",
		"path", path,
		"namespace", cfg.Pack.Namespace,
		"suffixes", len(cfg.Recipe.Strip))

	return cfg, nil
}

// New builds a Config around a strip table, with every other setting at its
// default. It applies the same validation as Load.
func New(strip map[string][]string) (*Config, error) {
	cfg := &Config{Recipe: &Recipe{Strip: strip}}
	setDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConfigMalformed, "invalid configuration", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Pack.Namespace == "" {
		cfg.Pack.Namespace = DefaultNamespace
	}
	if cfg.Recipe != nil && cfg.Recipe.Byproduct == "" {
		cfg.Recipe.Byproduct = DefaultByproduct
	}
}

func (c *Config) validate() error {
	if !identifier.ValidComponent(c.Pack.Namespace) {
		return fmt.Errorf("pack.namespace %q is not a valid namespace", c.Pack.Namespace)
	}

	if c.Pack.Version != "" {
		v, err := version.ParseVersion(c.Pack.Version)
		if err != nil {
			return fmt.Errorf("pack.version %q: %w", c.Pack.Version, err)
		}
		c.version = &v
	}

	if c.Recipe == nil {
		return fmt.Errorf("recipe section is required")
	}

	byproduct, err := identifier.Parse(c.Recipe.Byproduct)
	if err != nil {
		return fmt.Errorf("recipe.byproduct: %w", err)
	}
	c.byproduct = byproduct

	for i, mod := range c.Recipe.Requires {
		if !identifier.ValidComponent(mod) {
			return fmt.Errorf("recipe.requires[%d] %q is not a valid mod id", i, mod)
		}
	}

	if len(c.Recipe.Strip) == 0 {
		return fmt.Errorf("recipe.strip section is required and must not be empty")
	}
	for suffix, logs := range c.Recipe.Strip {
		if !identifier.ValidComponent(suffix) {
			return fmt.Errorf("recipe.strip key %q is not a valid path suffix", suffix)
		}
		for i, log := range logs {
			if _, err := identifier.Parse(log); err != nil {
				return fmt.Errorf("recipe.strip.%s[%d]: %w", suffix, i, err)
			}
		}
	}

	return nil
}

// Namespace returns the namespace generated record ids are placed in.
func (c *Config) Namespace() string {
	return c.Pack.Namespace
}

// Version returns the parsed pack version, if one was configured.
func (c *Config) Version() (version.Version, bool) {
	if c.version == nil {
		return version.Version{}, false
	}
	return *c.version, true
}

// Byproduct returns the parsed byproduct item id.
func (c *Config) Byproduct() identifier.Identifier {
	return c.byproduct
}

// Requires returns a copy of the required mod ids.
func (c *Config) Requires() []string {
	return slices.Clone(c.Recipe.Requires)
}

// StripSuffixes returns the strip output suffixes in sorted order.
func (c *Config) StripSuffixes() []string {
	keys := make([]string, 0, len(c.Recipe.Strip))
	for k := range c.Recipe.Strip {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StripLogs returns a copy of the log families for suffix in config order.
func (c *Config) StripLogs(suffix string) []string {
	return slices.Clone(c.Recipe.Strip[suffix])
}
