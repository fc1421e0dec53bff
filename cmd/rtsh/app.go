// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rtshell/rtshell/internal/config"
	"github.com/rtshell/rtshell/internal/rttree"
	"github.com/rtshell/rtshell/internal/rttree/store"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra command handler reaches configuration, the
	// namespace snapshot and the process environment through it.
	App struct {
		Config    ConfigProvider
		Trees     TreeOpener
		stdout    io.Writer
		stderr    io.Writer
		lookupEnv func(string) (string, bool)
		goos      string
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests supply buffers and a
	// fake environment to isolate command behavior.
	Dependencies struct {
		Config    ConfigProvider
		Trees     TreeOpener
		Stdout    io.Writer
		Stderr    io.Writer
		LookupEnv func(string) (string, bool)
		// GOOS selects the shell dialect `rtsh cd` prints. Defaults to runtime.GOOS.
		GOOS string
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Path(opts config.LoadOptions) (string, error)
	}

	// TreeStore loads a namespace snapshot and writes it back.
	TreeStore interface {
		Path() string
		Load(ctx context.Context, opts ...rttree.Option) (*rttree.Tree, error)
		Save(ctx context.Context, tree *rttree.Tree) error
	}

	// TreeOpener returns the store for a snapshot file.
	TreeOpener func(path string, logger *log.Logger) (TreeStore, error)
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Trees == nil {
		deps.Trees = openFileStore
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}
	if deps.GOOS == "" {
		deps.GOOS = runtime.GOOS
	}

	return &App{
		Config:    deps.Config,
		Trees:     deps.Trees,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		lookupEnv: deps.LookupEnv,
		goos:      deps.GOOS,
	}, nil
}

// openFileStore is the production TreeOpener.
func openFileStore(path string, logger *log.Logger) (TreeStore, error) {
	s, err := store.Open(path, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// getenv returns the value of key, or "" when unset.
func (a *App) getenv(key string) string {
	v, _ := a.lookupEnv(key)
	return v
}
