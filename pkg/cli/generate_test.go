package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/mangocompatdelight/datagen/pkg/checksum"
	"github.com/mangocompatdelight/datagen/pkg/config"
	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/header"
	"github.com/mangocompatdelight/datagen/pkg/serializer"
)

func TestParseGenerateCmdOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, opts *generateCmdOptions)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, opts *generateCmdOptions) {
				assert.Equal(t, config.DefaultPath, opts.configPath)
				assert.Equal(t, config.DefaultOutputRoot, opts.outputDir)
				assert.Equal(t, serializer.FormatYAML, opts.format)
				assert.Nil(t, opts.publish)
				assert.False(t, opts.watch)
			},
		},
		{
			name: "publish target",
			args: []string{"--publish", "oci://ghcr.io/mangocompatdelight/datapack:1.0.0", "--plain-http"},
			check: func(t *testing.T, opts *generateCmdOptions) {
				require.NotNil(t, opts.publish)
				assert.Equal(t, "ghcr.io", opts.publish.Registry)
				assert.Equal(t, "1.0.0", opts.publish.Tag)
				assert.True(t, opts.plainHTTP)
			},
		},
		{
			name: "all local flags",
			args: []string{"-c", "data.yaml", "-o", "out", "--checksums", "--watch", "-t", "json", "--namespace", "other"},
			check: func(t *testing.T, opts *generateCmdOptions) {
				assert.Equal(t, "data.yaml", opts.configPath)
				assert.Equal(t, "out", opts.outputDir)
				assert.Equal(t, "other", opts.namespace)
				assert.Equal(t, serializer.FormatJSON, opts.format)
				assert.True(t, opts.checksums)
				assert.True(t, opts.watch)
			},
		},
		{
			name:    "publish without scheme",
			args:    []string{"--publish", "ghcr.io/mangocompatdelight/datapack"},
			wantErr: true,
		},
		{
			name:    "plain http without publish",
			args:    []string{"--plain-http"},
			wantErr: true,
		},
		{
			name:    "insecure tls without publish",
			args:    []string{"--insecure-tls"},
			wantErr: true,
		},
		{
			name:    "unknown format",
			args:    []string{"--format", "xml"},
			wantErr: true,
		},
		{
			name:    "empty output",
			args:    []string{"--output", ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got    *generateCmdOptions
				gotErr error
			)
			cmd := &cli.Command{
				Name:  "test",
				Flags: generateCmd().Flags,
				Action: func(_ context.Context, c *cli.Command) error {
					got, gotErr = parseGenerateCmdOptions(c)
					return nil
				},
			}
			require.NoError(t, cmd.Run(t.Context(), append([]string{"test"}, tt.args...)))

			if tt.wantErr {
				assert.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			tt.check(t, got)
		})
	}
}

func TestGenerateCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "data")
	report := filepath.Join(dir, "report.json")
	metrics := filepath.Join(dir, "datagen.prom")

	err := runRoot(t, "generate",
		"--config", cfgPath,
		"--output", out,
		"--report", report,
		"--format", "json",
		"--metrics-file", metrics,
		"--checksums")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "mangocompatdelight", "recipe", "minecraft", "oak_log.json"))
	assert.FileExists(t, filepath.Join(out, "mangocompatdelight", "recipe", "minecraft", "spruce_log.json"))
	assert.FileExists(t, checksum.FilePath(out))

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, string(header.KindGenerationResult), doc["kind"])
	assert.EqualValues(t, 2, doc["total_files"])
	assert.Equal(t, checksum.FileName, doc["checksums"])
	assert.NotContains(t, doc, "publication")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "datagen_files_emitted_total")
}

func TestGenerateCommandMissingConfig(t *testing.T) {
	err := runRoot(t, "generate",
		"--config", filepath.Join(t.TempDir(), "absent.toml"),
		"--output", t.TempDir())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeConfigMissing))
}

func TestGenerateCommandNamespaceOverride(t *testing.T) {
	out := t.TempDir()
	err := runRoot(t, "generate",
		"--config", writeTestConfig(t),
		"--output", out,
		"--report", filepath.Join(t.TempDir(), "report.yaml"),
		"--namespace", "otherpack")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "otherpack", "recipe", "minecraft", "oak_log.json"))
	assert.NoDirExists(t, filepath.Join(out, "mangocompatdelight"))
}

func TestSourceDateEpoch(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"unset", "", "", false},
		{"epoch", "0", "1970-01-01T00:00:00Z", false},
		{"fixed", "1735689600", "2025-01-01T00:00:00Z", false},
		{"not a number", "yesterday", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envSourceDateEpoch, tt.value)
			got, err := sourceDateEpoch()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatchConfig(t *testing.T) {
	path := writeTestConfig(t)
	ctx, cancel := context.WithCancel(t.Context())

	runs := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchConfig(ctx, path, func(context.Context) error {
			runs <- struct{}{}
			return nil
		})
	}()

	// keep touching the file until the watcher is up and reports a change
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(testConfig), 0o600)
		select {
		case <-runs:
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
