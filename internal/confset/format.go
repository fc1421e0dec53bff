// SPDX-License-Identifier: MPL-2.0

package confset

import (
	"strings"
)

// Styler decorates set names in listings. The zero-value behavior (nil
// functions) leaves text unchanged.
type Styler struct {
	Active   func(string) string
	Inactive func(string) string
}

func (s Styler) active(text string) string {
	if s.Active == nil {
		return text
	}
	return s.Active(text)
}

func (s Styler) inactive(text string) string {
	if s.Inactive == nil {
		return text
	}
	return s.Inactive(text)
}

// Format renders entries as listing lines. Short listings prefix set names
// with '+', long listings with '-' followed by the indented parameters. The
// active set is marked with a trailing '*'.
func Format(entries []Entry, long bool, st Styler) []string {
	tag := "+"
	if long {
		tag = "-"
	}

	var lines []string
	for _, e := range entries {
		var title string
		if e.Active {
			title = tag + st.active(e.Name+"*")
			if e.Description != "" {
				title += " (" + e.Description + ")"
			}
		} else {
			title = tag + st.inactive(e.Name)
			if e.Description != "" {
				title += "  (" + e.Description + ")"
			}
		}
		lines = append(lines, title)

		if !long || len(e.Params) == 0 {
			continue
		}
		width := 0
		for _, p := range e.Params {
			width = max(width, len(p.Key))
		}
		width += 2
		for _, p := range e.Params {
			lines = append(lines, "  "+p.Key+strings.Repeat(" ", width-len(p.Key))+p.Value)
		}
	}
	return lines
}
