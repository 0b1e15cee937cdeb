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
	"fmt"
	"path/filepath"
	"time"

	"github.com/mangocompatdelight/datagen/pkg/header"
)

// File is one record document in the output tree.
type File struct {
	// ID is the record id the document was written for.
	ID string `json:"id" yaml:"id"`
	// Path is relative to the output root, slash-separated.
	Path string `json:"path" yaml:"path"`
	// Size is the document size in bytes; zero in listings.
	Size int64 `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
}

// Publication describes where the output tree was pushed.
type Publication struct {
	Reference string `json:"reference" yaml:"reference"`
	Digest    string `json:"digest" yaml:"digest"`
}

// Output summarizes an emission pass.
type Output struct {
	header.Header `json:",inline" yaml:",inline"`

	// Root is the directory records were written under.
	Root string `json:"root" yaml:"root"`

	// Files lists every written document in registry order.
	Files []File `json:"files" yaml:"files"`

	// TotalFiles is the number of record documents written.
	TotalFiles int `json:"total_files" yaml:"total_files"`

	// TotalSize is the combined size of the record documents in bytes.
	TotalSize int64 `json:"total_size_bytes" yaml:"total_size_bytes"`

	// TotalDuration is the time taken by the emission pass.
	TotalDuration time.Duration `json:"total_duration" yaml:"total_duration"`

	// Checksums is the checksum manifest path relative to Root, if written.
	Checksums string `json:"checksums,omitempty" yaml:"checksums,omitempty"`

	// Publication is set once the tree has been pushed to a registry.
	Publication *Publication `json:"publication,omitempty" yaml:"publication,omitempty"`
}

// AddFile records a written document.
func (o *Output) AddFile(id, path string, size int64) {
	o.Files = append(o.Files, File{ID: id, Path: path, Size: size})
	o.TotalFiles++
	o.TotalSize += size
}

// Paths returns every written document joined with Root.
func (o *Output) Paths() []string {
	paths := make([]string, 0, len(o.Files))
	for _, f := range o.Files {
		paths = append(paths, filepath.Join(o.Root, filepath.FromSlash(f.Path)))
	}
	return paths
}

// Summary returns a human-readable summary of the emission pass.
func (o *Output) Summary() string {
	return fmt.Sprintf(
		"Generated %d recipes (%s) in %v under %s.",
		o.TotalFiles,
		formatBytes(o.TotalSize),
		o.TotalDuration.Round(time.Millisecond),
		o.Root,
	)
}

// Listing describes the documents a registry would produce.
type Listing struct {
	header.Header `json:",inline" yaml:",inline"`

	Root  string `json:"root" yaml:"root"`
	Files []File `json:"files" yaml:"files"`
}

// formatBytes formats bytes into human-readable format.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
