// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rtshell/rtshell/internal/config"
	"github.com/rtshell/rtshell/internal/issue"
	"github.com/rtshell/rtshell/internal/logging"
	"github.com/rtshell/rtshell/internal/rtpath"
	"github.com/rtshell/rtshell/internal/rttree"
	"github.com/rtshell/rtshell/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// annotationConfigOptional marks commands that still run when the
// configuration file cannot be loaded.
const annotationConfigOptional = "rtsh/config-optional"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// globalFlags holds the persistent flags shared by every command.
	globalFlags struct {
		treeFile   string
		configFile string
		debug      bool
		verbose    bool
		noColor    bool
	}

	// session is the state of one rtsh invocation: parsed global flags, the
	// loaded configuration, the logger and the working directory.
	session struct {
		app     *App
		flags   globalFlags
		cfg     *config.Config
		logger  *log.Logger
		cwd     rtpath.WorkingDir
		ready   bool
		verbose bool
	}
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the rtsh command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	s := &session{app: app, logger: logging.Discard()}
	return s.rootCommand()
}

func (s *session) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rtsh",
		Short: "Shell commands for a namespace of running components",
		Long: TitleStyle.Render("rtsh") + SubtitleStyle.Render(" - shell commands for a namespace of running components") + `

rtsh navigates and edits a hierarchical namespace of name servers,
directories, managers and components. Paths are resolved against the
working directory in $RTCSH_CWD, which 'rtsh cd' updates through the
enclosing shell.

` + SubtitleStyle.Render("Paths:") + `
  /localhost/ConsoleIn0.rtc       absolute path to a component
  ConsoleIn0.rtc                  relative to $RTCSH_CWD
  /localhost/ConsoleIn0.rtc:out   a port of a component
  ..  .                           parent and current directory

` + SubtitleStyle.Render("Examples:") + `
  eval "$(rtsh cd /localhost)"    Change the working directory
  rtsh find . --type c            List components below the working directory
  rtsh conf ConsoleIn0.rtc -l     Show configuration sets with parameters
  rtsh act ConsoleIn0.rtc         Activate a component`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd)
		},
	}

	root.SetOut(s.app.stdout)
	root.SetErr(s.app.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&s.flags.treeFile, "tree", "", "namespace snapshot file (default is tree_file from config, or namespace.cue in the config directory)")
	pf.StringVar(&s.flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/rtsh/config.cue)")
	pf.BoolVarP(&s.flags.debug, "debug", "d", false, "print debugging information")
	pf.BoolVarP(&s.flags.verbose, "verbose", "v", false, "print extended help after an error")
	pf.BoolVar(&s.flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		s.cdCommand(),
		s.pwdCommand(),
		s.findCommand(),
		s.confCommand(),
		s.delCommand(),
		s.stateCommand(stateActivate),
		s.stateCommand(stateDeactivate),
		s.stateCommand(stateReset),
		s.configCommand(),
		newCompletionCommand(s.app),
	)

	return root
}

// init loads configuration and builds the logger. It runs once per
// invocation, from PersistentPreRunE or from a completion handler.
func (s *session) init(cmd *cobra.Command) error {
	if s.ready {
		return nil
	}
	s.ready = true

	s.logger = logging.FromEnv(s.app.stderr, s.flags.debug, s.app.lookupEnv)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.app.Config.Load(ctx, s.loadOptions())
	if err != nil {
		if cmd.Annotations[annotationConfigOptional] == "" {
			return &ExitError{Code: types.ExitFailure, Err: err}
		}
		s.logger.Warn("using default configuration", "err", err)
		cfg = config.DefaultConfig()
	}
	s.cfg = cfg

	s.verbose = s.flags.verbose
	if f := cmd.Flags().Lookup("verbose"); f == nil || !f.Changed {
		s.verbose = s.verbose || cfg.UI.Verbose
	}

	s.cwd = rtpath.NewWorkingDir(s.app.lookupEnv(string(cfg.CwdEnvVar)))
	s.logger.Debug("session ready", "cwd", s.cwd.OrRoot(), "cwd_var", cfg.CwdEnvVar)
	return nil
}

func (s *session) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(s.flags.configFile)}
}

// cwdVar returns the configured working directory variable name.
func (s *session) cwdVar() string {
	if s.cfg == nil {
		return string(config.DefaultCwdEnvVar)
	}
	return string(s.cfg.CwdEnvVar)
}

// treeFile returns the snapshot path for this invocation.
func (s *session) treeFile() (string, error) {
	if s.flags.treeFile != "" {
		return s.flags.treeFile, nil
	}
	return config.TreeFile(s.cfg, "")
}

// openTree loads the namespace snapshot.
func (s *session) openTree(ctx context.Context, op string) (TreeStore, *rttree.Tree, error) {
	path, err := s.treeFile()
	if err != nil {
		return nil, nil, treeLoadError(op, "", err)
	}
	st, err := s.app.Trees(path, s.logger)
	if err != nil {
		return nil, nil, treeLoadError(op, path, err)
	}
	tree, err := st.Load(ctx,
		rttree.WithCacheSize(int(s.cfg.Cache.Size)),
		rttree.WithLogger(s.logger),
	)
	if err != nil {
		return nil, nil, treeLoadError(op, path, err)
	}
	return st, tree, nil
}

// saveTree writes a mutated tree back.
func (s *session) saveTree(ctx context.Context, op string, st TreeStore, tree *rttree.Tree) error {
	if err := st.Save(ctx, tree); err != nil {
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation(op).
			WithResource(st.Path()).
			WithMessage("Failed to save the namespace").
			WithSuggestion("Check that the snapshot file and its directory are writable").
			Wrap(err).
			BuildError()}
	}
	return nil
}

// handleError prints the diagnostic for err to w. It is the fang error handler.
func (s *session) handleError(w io.Writer, err error) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fmt.Fprintf(w, "rtsh: %v\n", err)
		return
	}

	if !s.verbose {
		fmt.Fprintln(w, ae.Error())
		return
	}

	fmt.Fprintln(w, ae.Format(true))
	if ae.Issue == 0 {
		return
	}
	if entry := issue.Get(ae.Issue); entry != nil {
		rendered, renderErr := entry.Render(s.glamourStyle(w))
		if renderErr != nil {
			s.logger.Warn("failed to render issue catalog entry", "issueID", ae.Issue, "err", renderErr)
			return
		}
		fmt.Fprint(w, rendered)
	}
}

// Run executes rtsh with args and returns the process exit code.
func Run(ctx context.Context, app *App, args []string) types.ExitCode {
	s := &session{app: app, logger: logging.Discard()}
	root := s.rootCommand()
	root.SetArgs(args)

	// Use fang.Execute for enhanced Cobra styling.
	// Pass version via fang.WithVersion() since fang overrides root.Version.
	err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			s.handleError(w, err)
		}),
	)
	return exitCodeOf(err)
}

// Execute runs rtsh with the process arguments and exits. It is called by
// main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rtsh: %v\n", err)
		os.Exit(int(types.ExitFailure))
	}
	os.Exit(int(Run(context.Background(), app, os.Args[1:])))
}
