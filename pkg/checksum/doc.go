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

// Package checksum writes a sha256sum-compatible manifest for a generated
// datapack tree.
//
// Usage:
//
//	path, err := checksum.Write(ctx, root, files)
//
// Entries are sorted by their slash-separated path relative to root, so the
// manifest is stable across runs and platforms:
//
//	sha256sum -c checksums.txt
package checksum
