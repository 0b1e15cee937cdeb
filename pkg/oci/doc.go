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

// Package oci publishes a generated datapack tree to an OCI registry.
//
// The whole output root is packed as one reproducible gzipped tar layer of
// an OCI 1.1 artifact with type application/vnd.mangocompatdelight.datapack.v1,
// then copied to the registry with ORAS:
//
//	ref, err := oci.ParseReference("oci://ghcr.io/mangocompatdelight/datapack")
//	if err != nil {
//		return err
//	}
//	res, err := oci.Push(ctx, oci.PushOptions{
//		SourceDir: "src/main/data",
//		Reference: ref.WithDefaultTag(packVersion),
//	})
//
// Credentials come from the Docker configuration (~/.docker/config.json).
// PlainHTTP and InsecureTLS exist for local development registries.
//
// Pulling the artifact with "oras pull" recreates the output root directory.
package oci
