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

// Package header provides the envelope printed around generator reports.
//
// Every summary the CLI prints starts with a Kubernetes-style header so the
// output can be archived and told apart later:
//
//	kind: GenerationResult
//	apiVersion: datagen.mangocompatdelight.dev/v1
//	metadata:
//	  runId: 3f0c9a52-5a0b-4f61-9f0e-3c1f7f8e8f0d
//	  timestamp: "2025-06-01T12:00:00Z"
//	  version: v0.4.0
//
// Init fills the envelope for a run; New with options builds one by hand.
package header
