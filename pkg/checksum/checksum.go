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

package checksum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileName is the standard name for checksum files.
const FileName = "checksums.txt"

type entry struct {
	rel  string
	hash string
}

// Write creates FileName in root listing the SHA256 of every file, relative
// to root. It returns the manifest path.
func Write(ctx context.Context, root string, files []string) (string, error) {
	entries := make([]entry, 0, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		sum, err := hashFile(file)
		if err != nil {
			return "", err
		}

		rel, err := filepath.Rel(root, file)
		if err != nil {
			rel = file
		}
		entries = append(entries, entry{rel: filepath.ToSlash(rel), hash: sum})
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context cancelled: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].rel < entries[j].rel })

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s\n", e.hash, e.rel)
	}

	path := FilePath(root)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil { //nolint:gosec // published artifact
		return "", fmt.Errorf("failed to write checksums: %w", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(entries),
		"path", path,
	)

	return path, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s for checksum: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FilePath returns the full path to the checksums file in root.
func FilePath(root string) string {
	return filepath.Join(root, FileName)
}
