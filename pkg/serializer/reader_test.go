package serializer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value int    `json:"value" yaml:"value" toml:"value"`
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"data.json", FormatJSON},
		{"data.JSON", FormatJSON},
		{"data.yaml", FormatYAML},
		{"data.yml", FormatYAML},
		{"src/tool/data.toml", FormatTOML},
		{"DATA.TOML", FormatTOML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"noext", FormatJSON},
		{"data.xml", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"table is write-only", FormatTable, true},
		{"unknown", Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(""))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && r == nil {
				t.Fatal("expected non-nil reader")
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    testConfig
		wantErr bool
	}{
		{"json", FormatJSON, `{"name":"oak","value":1}`, testConfig{"oak", 1}, false},
		{"yaml", FormatYAML, "name: birch\nvalue: 2\n", testConfig{"birch", 2}, false},
		{"toml", FormatTOML, "name = \"spruce\"\nvalue = 3\n", testConfig{"spruce", 3}, false},
		{"invalid json", FormatJSON, `{invalid`, testConfig{}, true},
		{"invalid yaml", FormatYAML, "name: [unclosed", testConfig{}, true},
		{"invalid toml", FormatTOML, "name = ", testConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}

			var got testConfig
			err = r.Deserialize(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Deserialize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReader_KnownFields(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"name":"oak","value":1,"extra":true}`},
		{"yaml", FormatYAML, "name: oak\nvalue: 1\nextra: true\n"},
		{"toml", FormatTOML, "name = \"oak\"\nvalue = 1\nextra = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lenient, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			var got testConfig
			if err := lenient.Deserialize(&got); err != nil {
				t.Fatalf("lenient reader rejected unknown key: %v", err)
			}

			strict, err := NewReader(tt.format, strings.NewReader(tt.input), WithKnownFields())
			if err != nil {
				t.Fatal(err)
			}
			err = strict.Deserialize(&got)
			if err == nil {
				t.Fatal("expected strict reader to reject unknown key")
			}
			if !strings.Contains(err.Error(), "extra") {
				t.Errorf("expected error to name the unknown key, got: %v", err)
			}
		})
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader should be a no-op, got %v", err)
	}

	r, err := NewReader(FormatJSON, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error for nil input")
	}
}

type trackingCloser struct {
	strings.Reader
	closed int
	err    error
}

func (c *trackingCloser) Close() error {
	c.closed++
	return c.err
}

func TestReader_Close(t *testing.T) {
	closer := &trackingCloser{Reader: *strings.NewReader(`{}`), err: errors.New("boom")}
	r, err := NewReader(FormatJSON, closer)
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err == nil {
		t.Error("expected close error to propagate")
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if closer.closed != 1 {
		t.Errorf("expected one close, got %d", closer.closed)
	}
}

func TestNewFileReaderAuto(t *testing.T) {
	path := writeTemp(t, "data.toml", "name = \"acacia\"\nvalue = 9\n")

	r, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}
	defer r.Close()

	if r.format != FormatTOML {
		t.Errorf("expected toml format, got %s", r.format)
	}

	var got testConfig
	if err := r.Deserialize(&got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "acacia" || got.Value != 9 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestNewFileReader_Errors(t *testing.T) {
	if _, err := NewFileReader(FormatJSON, "/nonexistent/file.json"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := NewFileReader(FormatTable, writeTemp(t, "x.txt", "")); err == nil {
		t.Error("expected error for table format")
	}
}

func TestFromFile_Success(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "c.json", `{"name":"mango","value":5}`},
		{"yaml", "c.yaml", "name: mango\nvalue: 5\n"},
		{"toml", "c.toml", "name = \"mango\"\nvalue = 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FromFile[testConfig](writeTemp(t, tt.file, tt.content), WithKnownFields())
			if err != nil {
				t.Fatalf("FromFile failed: %v", err)
			}
			if result.Name != "mango" || result.Value != 5 {
				t.Errorf("Unexpected result: %+v", result)
			}
		})
	}
}

func TestFromFile_Map(t *testing.T) {
	path := writeTemp(t, "strip.toml", "[strip]\nlog = [\"oak\", \"birch\"]\n")

	result, err := FromFile[map[string]map[string][]string](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got := (*result)["strip"]["log"]; len(got) != 2 || got[0] != "oak" {
		t.Errorf("unexpected result: %+v", *result)
	}
}

func TestFromFile_Errors(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		_, err := FromFile[testConfig]("/nonexistent/file.json")
		if err == nil {
			t.Fatal("Expected error for nonexistent file")
		}
		if !strings.Contains(err.Error(), "failed to create serializer") {
			t.Errorf("Expected serializer creation error, got: %v", err)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := FromFile[testConfig](writeTemp(t, "bad.toml", "[unclosed"))
		if err == nil {
			t.Fatal("Expected error for invalid TOML")
		}
		if !strings.Contains(err.Error(), "failed to deserialize") {
			t.Errorf("Expected deserialization error, got: %v", err)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := FromFile[testConfig](writeTemp(t, "arr.json", `[{"name":"test"}]`))
		if err == nil {
			t.Fatal("Expected error for type mismatch")
		}
	})
}
