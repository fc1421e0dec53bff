// SPDX-License-Identifier: MPL-2.0

package confset

import (
	"slices"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Name: "default", Description: "Default configuration", Active: true, Params: []Param{{Key: "gain", Value: "0.5"}, {Key: "max_speed", Value: "1"}}},
		{Name: "outdoor", Params: []Param{{Key: "max_speed", Value: "3"}}},
	}

	tests := []struct {
		name string
		long bool
		want []string
	}{
		{
			name: "short",
			want: []string{
				"+default* (Default configuration)",
				"+outdoor",
			},
		},
		{
			name: "long",
			long: true,
			want: []string{
				"-default* (Default configuration)",
				"  gain       0.5",
				"  max_speed  1",
				"-outdoor",
				"  max_speed  3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Format(entries, tt.long, Styler{})
			if !slices.Equal(got, tt.want) {
				t.Errorf("Format() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestFormat_InactiveDescriptionAndStyler(t *testing.T) {
	t.Parallel()

	st := Styler{
		Active:   func(s string) string { return "<b>" + s + "</b>" },
		Inactive: func(s string) string { return "<i>" + s + "</i>" },
	}
	got := Format([]Entry{
		{Name: "a", Active: true},
		{Name: "b", Description: "second"},
	}, false, st)
	want := []string{"+<b>a*</b>", "+<i>b</i>  (second)"}
	if !slices.Equal(got, want) {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
