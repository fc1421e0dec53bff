// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "tree.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error keeps the chain", func(t *testing.T) {
		t.Parallel()

		orig := errors.New("disk gone")
		err := FormatError(orig, "tree.cue")
		if !errors.Is(err, orig) {
			t.Errorf("FormatError() should wrap the original error, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "tree.cue: ") {
			t.Errorf("error should start with the file path, got %q", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"servers"}, "servers"},
		{"nested", []string{"ui", "color_scheme"}, "ui.color_scheme"},
		{"index", []string{"servers", "0", "name"}, "servers[0].name"},
		{"deep", []string{"servers", "0", "children", "2", "kind"}, "servers[0].children[2].kind"},
		{"leading digits are a field", []string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		max     int64
		wantErr bool
	}{
		{"empty", 0, 100, false},
		{"under", 11, 100, false},
		{"exact", 100, 100, false},
		{"over", 101, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), tt.max, "tree.cue")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "101") {
				t.Errorf("error should report the size, got %v", err)
			}
		})
	}
}
