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
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/distribution/reference"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
)

// ArtifactType is the media type of published datapack artifacts.
const ArtifactType = "application/vnd.mangocompatdelight.datapack.v1"

// PushOptions configures the OCI push operation.
type PushOptions struct {
	// SourceDir is the generated datapack root to publish.
	SourceDir string
	// Reference is the tagged publish target.
	Reference *Reference
	// Annotations are added to the manifest.
	Annotations map[string]string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
	// ReproducibleTimestamp sets a fixed manifest creation time.
	ReproducibleTimestamp string

	// target overrides the remote repository.
	target oras.Target
}

// PushResult contains the result of a successful OCI push.
type PushResult struct {
	// Digest is the SHA256 digest of the pushed manifest.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// Push packs SourceDir as a single gzipped tar layer of an OCI 1.1 artifact
// and copies it to the registry named by opts.Reference.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if opts.Reference == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "publish reference is required")
	}
	if opts.Reference.Tag == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "tag is required to push OCI artifact")
	}

	refString := opts.Reference.ImageReference()
	if _, err := reference.ParseNormalizedNamed(refString); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid image reference", err, map[string]any{"reference": refString})
	}

	absDir, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve source directory", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"source directory not found", err, map[string]any{"path": absDir})
	}
	if !info.IsDir() {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"source must be a directory", map[string]any{"path": absDir})
	}

	fs, err := file.New(absDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create file store", err)
	}
	defer func() { _ = fs.Close() }()

	fs.TarReproducible = true

	layerDesc, err := fs.Add(ctx, filepath.Base(absDir), ociv1.MediaTypeImageLayerGzip, absDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to add source directory to store", err)
	}

	packOpts := oras.PackManifestOptions{
		Layers:              []ociv1.Descriptor{layerDesc},
		ManifestAnnotations: manifestAnnotations(opts),
	}
	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType, packOpts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to pack manifest", err)
	}

	tag := opts.Reference.Tag
	if err := fs.Tag(ctx, manifestDesc, tag); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	target := opts.target
	if target == nil {
		repo, err := remote.NewRepository(fmt.Sprintf("%s/%s", opts.Reference.Registry, opts.Reference.Repository))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to initialize remote repository", err)
		}
		repo.PlainHTTP = opts.PlainHTTP
		repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)
		target = repo
	}

	slog.Info("pushing datapack to registry",
		"reference", refString,
		"source", absDir)

	desc, err := oras.Copy(ctx, fs, tag, target, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to push artifact to registry", err, map[string]any{"reference": refString})
	}

	slog.Info("datapack pushed",
		"reference", refString,
		"digest", desc.Digest.String())

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: refString,
	}, nil
}

func manifestAnnotations(opts PushOptions) map[string]string {
	annotations := make(map[string]string, len(opts.Annotations)+1)
	for k, v := range opts.Annotations {
		annotations[k] = v
	}
	if opts.ReproducibleTimestamp != "" {
		annotations[ociv1.AnnotationCreated] = opts.ReproducibleTimestamp
	}
	if len(annotations) == 0 {
		return nil
	}
	return annotations
}

// createAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable, pushing anonymously", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
