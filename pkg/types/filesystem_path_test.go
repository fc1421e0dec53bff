// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		want    bool
		wantErr bool
	}{
		{"absolute path", FilesystemPath("/var/lib/rtsh/tree.cue"), true, false},
		{"relative path", FilesystemPath("tree.cue"), true, false},
		{"windows style", FilesystemPath("C:\\Users\\me\\tree.yaml"), true, false},
		{"path with spaces", FilesystemPath("/path/to/my file.txt"), true, false},
		{"dot path", FilesystemPath("."), true, false},
		{"empty is invalid", FilesystemPath(""), false, true},
		{"whitespace only is invalid", FilesystemPath("   "), false, true},
		{"tab only is invalid", FilesystemPath("\t"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.path.Validate()
			if (err == nil) != tt.want {
				t.Errorf("FilesystemPath(%q).Validate() error = %v, wantValid %v", tt.path, err, tt.want)
			}
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FilesystemPath(%q).Validate() returned nil, want error", tt.path)
				}
				if !errors.Is(err, ErrInvalidFilesystemPath) {
					t.Errorf("error should wrap ErrInvalidFilesystemPath, got: %v", err)
				}
				var fpErr *InvalidFilesystemPathError
				if !errors.As(err, &fpErr) {
					t.Errorf("error should be *InvalidFilesystemPathError, got: %T", err)
				}
			} else if err != nil {
				t.Errorf("FilesystemPath(%q).Validate() returned unexpected error: %v", tt.path, err)
			}
		})
	}
}

func TestFilesystemPath_String(t *testing.T) {
	t.Parallel()
	p := FilesystemPath("/var/lib/rtsh/tree.cue")
	if p.String() != "/var/lib/rtsh/tree.cue" {
		t.Errorf("FilesystemPath.String() = %q, want %q", p.String(), "/var/lib/rtsh/tree.cue")
	}
}

func TestFilesystemPath_Resolve(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator)+"home", "me")
	abs := filepath.Join(string(filepath.Separator)+"etc", "rtsh", "tree.cue")

	tests := []struct {
		name    string
		path    FilesystemPath
		base    string
		want    FilesystemPath
		wantErr bool
	}{
		{"relative joins base", "tree.cue", base, FilesystemPath(filepath.Join(base, "tree.cue")), false},
		{"absolute kept", FilesystemPath(abs), base, FilesystemPath(abs), false},
		{"no base keeps relative", "sub/../tree.cue", "", "tree.cue", false},
		{"empty is rejected", "", base, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.path.Resolve(tt.base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
