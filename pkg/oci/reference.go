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

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
)

// URIScheme is the URI scheme for publish targets (e.g., "oci://ghcr.io/org/pack:1.0.0").
const URIScheme = "oci://"

// DefaultTag is used when neither the target nor the pack version names a tag.
const DefaultTag = "latest"

// Reference is a parsed publish target.
type Reference struct {
	// Registry is the OCI registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "mangocompatdelight/datapack").
	Repository string
	// Tag is the image tag. Empty means none was given; callers apply a default.
	Tag string
}

// ParseReference parses an oci://registry/repository[:tag] target.
func ParseReference(target string) (*Reference, error) {
	if !strings.HasPrefix(target, URIScheme) {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"publish target must start with "+URIScheme, map[string]any{"target": target})
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid OCI reference", err, map[string]any{"target": target})
	}
	if _, ok := ref.(reference.Digested); ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"publish target cannot pin a digest", map[string]any{"target": target})
	}

	registry := reference.Domain(ref)
	repository := reference.Path(ref)

	var tag string
	if tagged, ok := ref.(reference.Tagged); ok {
		tag = tagged.Tag()
	}

	if err := ValidateRegistryReference(registry, repository); err != nil {
		return nil, err
	}

	return &Reference{
		Registry:   registry,
		Repository: repository,
		Tag:        tag,
	}, nil
}

// ValidateRegistryReference checks that registry and repository form a
// valid untagged image name. A leading http:// or https:// on the registry is
// ignored.
func ValidateRegistryReference(registry, repository string) error {
	host := stripProtocol(registry)
	if host == "" || repository == "" {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"registry and repository are required",
			map[string]any{"registry": registry, "repository": repository})
	}

	name := host + "/" + repository
	named, err := reference.ParseNormalizedNamed(name)
	if err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid registry reference", err, map[string]any{"reference": name})
	}
	if !reference.IsNameOnly(named) {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"repository must not carry a tag or digest", map[string]any{"reference": name})
	}
	return nil
}

// String returns the reference as an oci:// URI.
func (r *Reference) String() string {
	return URIScheme + r.ImageReference()
}

// ImageReference returns the Docker-style image reference (without oci:// scheme).
func (r *Reference) ImageReference() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with the specified tag.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
	}
}

// WithDefaultTag returns r unchanged when it has a tag, otherwise a copy
// tagged with the first non-empty candidate, falling back to DefaultTag.
func (r *Reference) WithDefaultTag(candidates ...string) *Reference {
	if r.Tag != "" {
		return r
	}
	for _, c := range candidates {
		if c != "" {
			return r.WithTag(c)
		}
	}
	return r.WithTag(DefaultTag)
}

// stripProtocol removes http:// or https:// prefix from a registry URL.
func stripProtocol(registry string) string {
	registry = strings.TrimPrefix(registry, "https://")
	registry = strings.TrimPrefix(registry, "http://")
	return registry
}
