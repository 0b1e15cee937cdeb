package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr error
	}{
		{"1", Version{Major: 1, Precision: 1}, nil},
		{"v1.2", Version{Major: 1, Minor: 2, Precision: 2}, nil},
		{"1.2.3", Version{Major: 1, Minor: 2, Patch: 3, Precision: 3}, nil},
		{"1.2.0-rc.1", Version{Major: 1, Minor: 2, Precision: 3, Extras: "-rc.1"}, nil},
		{"1.2.0+mc1.21", Version{Major: 1, Minor: 2, Precision: 3, Extras: "+mc1.21"}, nil},
		{"", Version{}, ErrEmptyVersion},
		{"1.2.3.4", Version{}, ErrTooManyComponents},
		{"1..2", Version{}, ErrNonNumeric},
		{"a.b", Version{}, ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.2.3", "1.2.3"},
		{"v2", "2"},
		{"1.0.0-beta", "1.0.0-beta"},
		{"1.0.0+mc1.21", "1.0.0_mc1.21"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MustParseVersion(tt.input).Tag(); got != tt.want {
				t.Errorf("Tag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustParseVersionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseVersion("not-a-version")
}
