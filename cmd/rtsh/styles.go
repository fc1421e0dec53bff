// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/rtshell/rtshell/internal/config"
	"github.com/rtshell/rtshell/internal/confset"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - shared hex colors for consistent theming across all CLI output.
const (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for the active configuration set and values.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for keys and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for values and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for keys, commands and interactive elements.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// activeSetStyle marks the active configuration set.
	activeSetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// inactiveSetStyle marks the other configuration sets.
	inactiveSetStyle = lipgloss.NewStyle().
				Bold(true)
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorEnabled reports whether output to w should be styled.
func (s *session) colorEnabled(w io.Writer) bool {
	if s.flags.noColor {
		return false
	}
	if _, ok := s.app.lookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}

// confSetStyler returns the listing styler for w.
func (s *session) confSetStyler(w io.Writer) confset.Styler {
	if !s.colorEnabled(w) {
		return confset.Styler{}
	}
	return confset.Styler{
		Active:   activeSetStyle.Render,
		Inactive: inactiveSetStyle.Render,
	}
}

// glamourStyle returns the glamour style used to render issue help on w.
func (s *session) glamourStyle(w io.Writer) string {
	if !s.colorEnabled(w) {
		return "notty"
	}
	scheme := config.ColorSchemeAuto
	if s.cfg != nil {
		scheme = s.cfg.UI.ColorScheme
	}
	if scheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// render applies st to text when color is enabled for w.
func (s *session) render(w io.Writer, st lipgloss.Style, text string) string {
	if !s.colorEnabled(w) {
		return text
	}
	return st.Render(text)
}
