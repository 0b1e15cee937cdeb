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
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mangocompatdelight/datagen/pkg/checksum"
	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/header"
	"github.com/mangocompatdelight/datagen/pkg/identifier"
	"github.com/mangocompatdelight/datagen/pkg/record"
	"github.com/mangocompatdelight/datagen/pkg/serializer"
)

// RecipeDir is the datapack directory recipes are loaded from.
const RecipeDir = "recipe"

const dirPerm = 0o755

type emitOptions struct {
	checksums   bool
	toolVersion string
}

// EmitOption configures Emit.
type EmitOption func(*emitOptions)

// WithChecksums writes checksum.FileName at the output root after every
// record has been written.
func WithChecksums() EmitOption {
	return func(o *emitOptions) {
		o.checksums = true
	}
}

// WithToolVersion records the generator version in the Output header.
func WithToolVersion(version string) EmitOption {
	return func(o *emitOptions) {
		o.toolVersion = version
	}
}

// TargetPath returns the file a record with id is written to under root:
// {root}/{namespace}/recipe/{path}.json. Ids whose path would escape the
// recipe directory are rejected.
func TargetPath(root string, id identifier.Identifier) (string, error) {
	ns, path := id.Split()
	if id.IsZero() {
		return "", apperrors.New(apperrors.ErrCodeMalformedIdentifier, "record id is empty")
	}

	base := filepath.Join(root, ns, RecipeDir)
	target := filepath.Join(base, filepath.FromSlash(path)+".json")
	if !strings.HasPrefix(target, base+string(filepath.Separator)) {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"record id escapes the recipe directory", map[string]any{"id": id.String()})
	}
	return target, nil
}

// Emit writes every record of registry under root and consumes the registry.
//
// The registry is validated first; a duplicate id fails with
// DUPLICATE_RECORD_ID before anything is written. Each record is written as
// two-space indented JSON to TargetPath(root, id), creating directories as
// needed. The context is checked between records.
func Emit(ctx context.Context, registry *record.Registry, root string, opts ...EmitOption) (*Output, error) {
	start := time.Now()

	o := &emitOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if err := registry.Validate(); err != nil {
		return nil, err
	}

	records, err := registry.Take()
	if err != nil {
		return nil, err
	}

	targets := make([]string, len(records))
	for i, rec := range records {
		if targets[i], err = TargetPath(root, rec.ID()); err != nil {
			return nil, err
		}
	}

	out := &Output{
		Root:  root,
		Files: make([]File, 0, len(records)),
	}
	out.Init(header.KindGenerationResult, o.toolVersion)

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal, "emission cancelled", err,
				map[string]any{"written": i, "total": len(records)})
		}

		size, err := writeRecord(ctx, rec, targets[i])
		if err != nil {
			return nil, err
		}

		out.AddFile(rec.ID().String(), relPath(root, targets[i]), size)
		filesEmitted.Inc()
		bytesEmitted.Add(float64(size))
	}

	if o.checksums {
		path, err := checksum.Write(ctx, root, targets)
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
				"failed to write checksums", err, map[string]any{"root": root})
		}
		out.Checksums = relPath(root, path)
	}

	out.TotalDuration = time.Since(start)
	emitDuration.Observe(out.TotalDuration.Seconds())

	slog.Info("records emitted",
		"files", out.TotalFiles,
		"bytes", out.TotalSize,
		"root", root,
		"duration", out.TotalDuration.String())

	return out, nil
}

func writeRecord(ctx context.Context, rec *record.Record, path string) (int64, error) {
	errCtx := map[string]any{"id": rec.ID().String(), "path": path}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to create output directory", err, errCtx)
	}

	w, err := serializer.NewFileWriter(serializer.FormatJSON, path)
	if err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to create record file", err, errCtx)
	}

	if err := w.Serialize(ctx, rec); err != nil {
		_ = w.Close()
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to write record", err, errCtx)
	}
	if err := w.Close(); err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to close record file", err, errCtx)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to stat record file", err, errCtx)
	}

	slog.Debug("record written", "id", rec.ID().String(), "path", path, "size", info.Size())
	return info.Size(), nil
}

// List describes where every record of registry would be written under root
// without writing anything or consuming the registry.
func List(registry *record.Registry, root string, toolVersion string) (*Listing, error) {
	if err := registry.Validate(); err != nil {
		return nil, err
	}

	l := &Listing{Root: root}
	l.Init(header.KindRecordListing, toolVersion)

	for _, rec := range registry.Records() {
		target, err := TargetPath(root, rec.ID())
		if err != nil {
			return nil, err
		}
		l.Files = append(l.Files, File{ID: rec.ID().String(), Path: relPath(root, target)})
	}
	return l, nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
