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

// Package config loads the generator configuration.
//
// The configuration is a small table of item-family relationships:
//
//	[pack]
//	namespace = "mangocompatdelight"
//	version   = "1.2.0"
//
//	[recipe]
//	requires  = ["farmersdelight"]
//	byproduct = "farmersdelight:tree_bark"
//
//	[recipe.strip]
//	stripped_log = ["oak", "spruce", "mangomod:mango"]
//
// TOML, YAML and JSON are accepted; the format follows the file extension.
// Only [recipe.strip] is required. Unknown keys are rejected so typos fail
// loudly instead of silently producing fewer records.
package config
