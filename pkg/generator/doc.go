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

// Package generator expands a datapack configuration into recipe records and
// writes them to disk.
//
// Generation and emission are separate passes. Generate walks the strip
// table and builds a validated record.Registry; Emit consumes that registry
// and writes one JSON document per record:
//
//	g := generator.New()
//	reg, err := g.Generate(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	out, err := generator.Emit(ctx, reg, "src/main/data", generator.WithChecksums())
//
// For the entry
//
//	[recipe.strip]
//	stripped_log = ["oak"]
//
// Generate produces the record mangocompatdelight:minecraft/oak_log, which
// Emit writes to src/main/data/mangocompatdelight/recipe/minecraft/oak_log.json.
//
// Every pass runs on a fresh registry; nothing is carried over between runs.
// Both passes record Prometheus metrics which WriteMetrics exports in the
// text format.
package generator
