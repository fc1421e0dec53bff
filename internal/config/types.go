// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rtshell/rtshell/internal/query"
	"github.com/rtshell/rtshell/pkg/types"

	"mvdan.cc/sh/v3/syntax"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultCwdEnvVar is the environment variable holding the current
	// namespace directory.
	DefaultCwdEnvVar EnvVarName = "RTCSH_CWD"
	// DefaultFindTypes selects every node kind.
	DefaultFindTypes TypeLetters = "cdmn"
	// DefaultCacheSize matches the tree's own default.
	DefaultCacheSize CacheSize = 256
	// MaxCacheSize bounds the lookup cache.
	MaxCacheSize CacheSize = 65536
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidEnvVarName is returned when an EnvVarName is not a valid shell name.
	ErrInvalidEnvVarName = errors.New("invalid environment variable name")
	// ErrInvalidTypeLetters is returned when TypeLetters contains unknown kinds.
	ErrInvalidTypeLetters = errors.New("invalid node type letters")
	// ErrInvalidCacheSize is returned when a CacheSize is out of range.
	ErrInvalidCacheSize = errors.New("invalid cache size")
	// ErrInvalidTreeFilePath is returned when a TreeFilePath is whitespace-only.
	ErrInvalidTreeFilePath = errors.New("invalid tree file path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// EnvVarName names the variable `rtsh cd` assigns.
	EnvVarName string

	// InvalidEnvVarNameError is returned when an EnvVarName is not a valid
	// shell variable name.
	InvalidEnvVarNameError struct {
		Value EnvVarName
	}

	// TypeLetters is a default --type selection such as "cd".
	TypeLetters string

	// InvalidTypeLettersError is returned when TypeLetters does not parse.
	InvalidTypeLettersError struct {
		Value TypeLetters
		Cause error
	}

	// CacheSize is the number of path lookups memoised per tree.
	CacheSize int

	// InvalidCacheSizeError is returned when a CacheSize is outside 1..MaxCacheSize.
	InvalidCacheSizeError struct {
		Value CacheSize
	}

	// TreeFilePath is the namespace snapshot to load.
	// The zero value ("") means "namespace.cue in the config directory".
	TreeFilePath string

	// InvalidTreeFilePathError is returned when a TreeFilePath value is
	// non-empty but whitespace-only.
	InvalidTreeFilePathError struct {
		Value TreeFilePath
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// CwdEnvVar is the variable holding the current namespace directory.
		CwdEnvVar EnvVarName `json:"cwd_env_var" mapstructure:"cwd_env_var"`
		// TreeFile is the namespace snapshot used when --tree is not given.
		TreeFile TreeFilePath `json:"tree_file" mapstructure:"tree_file"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Find configures `rtsh find`
		Find FindConfig `json:"find" mapstructure:"find"`
		// Cache configures the tree lookup cache
		Cache CacheConfig `json:"cache" mapstructure:"cache"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose prints issue help after a failure
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// FindConfig configures `rtsh find`.
	FindConfig struct {
		// DefaultTypes is used when --type is not given.
		DefaultTypes TypeLetters `json:"default_types" mapstructure:"default_types"`
	}

	// CacheConfig configures the tree lookup cache.
	CacheConfig struct {
		Size CacheSize `json:"size" mapstructure:"size"`
	}
)

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.CwdEnvVar.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.TreeFile.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Find.DefaultTypes.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Cache.Size.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		msgs = append(msgs, fe.Error())
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is()
// compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

func (e *InvalidEnvVarNameError) Error() string {
	return fmt.Sprintf("invalid environment variable name %q", e.Value)
}

func (e *InvalidEnvVarNameError) Unwrap() error { return ErrInvalidEnvVarName }

func (n EnvVarName) String() string { return string(n) }

// IsValid reports whether n is a valid POSIX shell variable name.
func (n EnvVarName) IsValid() (bool, []error) {
	if !syntax.ValidName(string(n)) {
		return false, []error{&InvalidEnvVarNameError{Value: n}}
	}
	return true, nil
}

func (e *InvalidTypeLettersError) Error() string {
	return fmt.Sprintf("invalid default types %q: %v", e.Value, e.Cause)
}

func (e *InvalidTypeLettersError) Unwrap() error { return ErrInvalidTypeLetters }

func (l TypeLetters) String() string { return string(l) }

// IsValid reports whether l parses as a node type selection.
func (l TypeLetters) IsValid() (bool, []error) {
	if _, err := query.ParseTypes(string(l)); err != nil {
		return false, []error{&InvalidTypeLettersError{Value: l, Cause: err}}
	}
	return true, nil
}

// TypeSet parses l. Callers should have validated l first.
func (l TypeLetters) TypeSet() (query.TypeSet, error) {
	return query.ParseTypes(string(l))
}

func (e *InvalidCacheSizeError) Error() string {
	return fmt.Sprintf("invalid cache size %d (must be in range 1-%d)", e.Value, MaxCacheSize)
}

func (e *InvalidCacheSizeError) Unwrap() error { return ErrInvalidCacheSize }

// IsValid reports whether s is within 1..MaxCacheSize.
func (s CacheSize) IsValid() (bool, []error) {
	if s < 1 || s > MaxCacheSize {
		return false, []error{&InvalidCacheSizeError{Value: s}}
	}
	return true, nil
}

// String returns the string representation of the TreeFilePath.
func (p TreeFilePath) String() string { return string(p) }

// IsValid returns whether the TreeFilePath is valid.
// The zero value ("") is valid. Non-zero values must not be whitespace-only.
func (p TreeFilePath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if err := types.FilesystemPath(p).Validate(); err != nil {
		return false, []error{&InvalidTreeFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidTreeFilePathError.
func (e *InvalidTreeFilePathError) Error() string {
	return fmt.Sprintf("invalid tree file path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidTreeFilePath for errors.Is() compatibility.
func (e *InvalidTreeFilePathError) Unwrap() error { return ErrInvalidTreeFilePath }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CwdEnvVar: DefaultCwdEnvVar,
		TreeFile:  "",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Find: FindConfig{
			DefaultTypes: DefaultFindTypes,
		},
		Cache: CacheConfig{
			Size: DefaultCacheSize,
		},
	}
}
