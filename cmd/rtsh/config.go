// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rtshell/rtshell/internal/config"
	"github.com/rtshell/rtshell/internal/issue"
	"github.com/rtshell/rtshell/pkg/types"

	"github.com/spf13/cobra"
)

// configKeys lists the keys accepted by `rtsh config set`.
var configKeys = []string{
	"cwd_env_var",
	"tree_file",
	"ui.color_scheme",
	"ui.verbose",
	"find.default_types",
	"cache.size",
}

// configCommand creates the `rtsh config` command tree.
func (s *session) configCommand() *cobra.Command {
	optional := map[string]string{annotationConfigOptional: "true"}

	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rtsh configuration",
		Long: `Manage rtsh configuration.

Configuration is stored in:
  - Linux: ~/.config/rtsh/config.cue
  - macOS: ~/Library/Application Support/rtsh/config.cue
  - Windows: %APPDATA%\rtsh\config.cue

Every value can be overridden with an RTSH_<KEY> environment variable, for
example RTSH_CACHE_SIZE=512 or RTSH_FIND_DEFAULT_TYPES=c.`,
		Annotations: optional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.showConfig(cmd.OutOrStdout())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Create default configuration file",
		Args:        cobra.NoArgs,
		Annotations: optional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.initConfig(cmd.OutOrStdout())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Show configuration file path",
		Args:        cobra.NoArgs,
		Annotations: optional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.showConfigPath(cmd.OutOrStdout())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: configKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.setConfigValue(cmd.OutOrStdout(), args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(s.cfg))
			return nil
		},
	})

	return cfgCmd
}

func (s *session) showConfig(w io.Writer) error {
	cfg := s.cfg

	// Style definitions using shared color palette
	header := func(text string) string { return s.render(w, TitleStyle, text) }
	key := func(text string) string { return s.render(w, CmdStyle, text) }
	value := func(v any) string { return s.render(w, SuccessStyle, fmt.Sprint(v)) }
	muted := func(text string) string { return s.render(w, SubtitleStyle, text) }

	fmt.Fprintln(w, header("Current Configuration"))
	fmt.Fprintln(w)

	path, err := s.app.Config.Path(s.loadOptions())
	switch {
	case err != nil:
		return configError("rtsh config show", err)
	case path == "":
		fmt.Fprintf(w, "%s: %s\n", key("Config file"), muted("(using defaults)"))
	default:
		fmt.Fprintf(w, "%s: %s\n", key("Config file"), path)
	}

	treeFile, err := s.treeFile()
	if err != nil {
		return configError("rtsh config show", err)
	}
	fmt.Fprintf(w, "%s: %s\n", key("Namespace"), treeFile)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", key("cwd_env_var"), value(cfg.CwdEnvVar))
	if cfg.TreeFile == "" {
		fmt.Fprintf(w, "%s: %s\n", key("tree_file"), muted("(default)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", key("tree_file"), value(cfg.TreeFile))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", key("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", value(cfg.UI.ColorScheme))
	fmt.Fprintf(w, "  verbose: %s\n", value(cfg.UI.Verbose))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", key("find"))
	fmt.Fprintf(w, "  default_types: %s\n", value(cfg.Find.DefaultTypes))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", key("cache"))
	fmt.Fprintf(w, "  size: %s\n", value(cfg.Cache.Size))

	return nil
}

func (s *session) initConfig(w io.Writer) error {
	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return configError("rtsh config init", err)
	}

	if !created {
		fmt.Fprintf(w, "%s Configuration already exists at %s\n", s.render(w, WarningStyle, "!"), path)
		return nil
	}
	fmt.Fprintf(w, "%s Created default configuration at %s\n", s.render(w, SuccessStyle, "✓"), path)
	return nil
}

func (s *session) showConfigPath(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return configError("rtsh config path", err)
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)

	path, err := s.app.Config.Path(s.loadOptions())
	if err != nil {
		return configError("rtsh config path", err)
	}
	if path == "" {
		path = cfgDir + "/" + config.ConfigFileName + "." + config.ConfigFileExt + " (not created)"
	}
	fmt.Fprintf(w, "Config file: %s\n", path)

	if s.cfg != nil {
		if treeFile, err := s.treeFile(); err == nil {
			fmt.Fprintf(w, "Namespace file: %s\n", treeFile)
		}
	}

	return nil
}

func (s *session) setConfigValue(w io.Writer, key, value string) error {
	const op = "rtsh config set"
	cfg := *s.cfg

	switch key {
	case "cwd_env_var":
		cfg.CwdEnvVar = config.EnvVarName(value)
	case "tree_file":
		cfg.TreeFile = config.TreeFilePath(value)
	case "ui.color_scheme":
		cfg.UI.ColorScheme = config.ColorScheme(value)
	case "ui.verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fail(op, key, fmt.Sprintf("Invalid boolean %q", value), 0)
		}
		cfg.UI.Verbose = b
	case "find.default_types":
		cfg.Find.DefaultTypes = config.TypeLetters(value)
	case "cache.size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fail(op, key, fmt.Sprintf("Invalid number %q", value), 0)
		}
		cfg.Cache.Size = config.CacheSize(n)
	default:
		return fail(op, key, "Unknown configuration key", 0, "Valid keys: "+strings.Join(configKeys, ", "))
	}

	if valid, errs := cfg.IsValid(); !valid {
		return fail(op, key, capitalize(errors.Join(errs...).Error()), issue.ConfigLoadFailedId)
	}

	if err := config.Save(&cfg); err != nil {
		return configError(op, err)
	}

	s.logger.Debug("saved configuration", "key", key)
	fmt.Fprintf(w, "%s Set %s = %s\n", s.render(w, SuccessStyle, "✓"), key, value)
	return nil
}

// configError wraps a failure to read or write configuration.
func configError(op string, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
		WithOperation(op).
		WithMessage(capitalize(err.Error())).
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()}
}
