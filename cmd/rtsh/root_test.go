// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtshell/rtshell/internal/config"
	"github.com/rtshell/rtshell/internal/issue"
	"github.com/rtshell/rtshell/internal/rtpath"
	"github.com/rtshell/rtshell/internal/rttree"
	"github.com/rtshell/rtshell/internal/rttree/store"
	"github.com/rtshell/rtshell/internal/testutil"
	"github.com/rtshell/rtshell/internal/testutil/rttreetest"
	"github.com/rtshell/rtshell/pkg/types"
)

type (
	// staticConfig is a ConfigProvider returning a fixed configuration.
	staticConfig struct {
		cfg  *config.Config
		path string
		err  error
	}

	// harness runs rtsh in-process against a snapshot in a temp directory.
	harness struct {
		t      *testing.T
		tree   string
		env    map[string]string
		goos   string
		cfg    *config.Config
		cfgErr error
		stdout bytes.Buffer
		stderr bytes.Buffer
	}
)

func (c staticConfig) Load(ctx context.Context, _ config.LoadOptions) (*config.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}
	cp := *c.cfg
	return &cp, nil
}

func (c staticConfig) Path(config.LoadOptions) (string, error) { return c.path, nil }

// newHarness writes the sample namespace as YAML and returns a harness using it.
func newHarness(t *testing.T) *harness {
	t.Helper()

	doc, err := store.Snapshot(rttreetest.Sample(t))
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	data, err := store.Encode(doc, store.FormatYAML)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	path := testutil.MustWriteFile(t, filepath.Join(t.TempDir(), "namespace.yaml"), string(data))

	return &harness{
		t:    t,
		tree: path,
		env:  map[string]string{},
		goos: "linux",
		cfg:  config.DefaultConfig(),
	}
}

// run executes rtsh with --tree prepended and returns the exit code.
func (h *harness) run(args ...string) types.ExitCode {
	h.t.Helper()
	h.stdout.Reset()
	h.stderr.Reset()

	app, err := NewApp(Dependencies{
		Config: staticConfig{cfg: h.cfg, err: h.cfgErr},
		Stdout: &h.stdout,
		Stderr: &h.stderr,
		LookupEnv: func(key string) (string, bool) {
			v, ok := h.env[key]
			return v, ok
		},
		GOOS: h.goos,
	})
	if err != nil {
		h.t.Fatalf("NewApp() error = %v", err)
	}
	return Run(context.Background(), app, append([]string{"--tree", h.tree}, args...))
}

// mustRun runs args and fails the test on a non-zero exit code.
func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	if code := h.run(args...); code != types.ExitSuccess {
		h.t.Fatalf("rtsh %s: exit %d, stderr:\n%s", strings.Join(args, " "), code, h.stderr.String())
	}
	return h.stdout.String()
}

// mustFail runs args, expects exit code 1 and returns stderr.
func (h *harness) mustFail(args ...string) string {
	h.t.Helper()
	if code := h.run(args...); code != types.ExitFailure {
		h.t.Fatalf("rtsh %s: exit %d, want %d; stdout:\n%s", strings.Join(args, " "), code, types.ExitFailure, h.stdout.String())
	}
	return h.stderr.String()
}

// reload loads the snapshot file the harness writes to.
func (h *harness) reload() *rttree.Tree {
	h.t.Helper()
	s, err := store.Open(h.tree, nil)
	if err != nil {
		h.t.Fatalf("Open() error = %v", err)
	}
	tree, err := s.Load(context.Background())
	if err != nil {
		h.t.Fatalf("Load() error = %v", err)
	}
	return tree
}

func (h *harness) component(path string) *rttree.Component {
	h.t.Helper()
	c, err := h.reload().GetComponent(rtpath.MustParse(path))
	if err != nil {
		h.t.Fatalf("GetComponent(%s) error = %v", path, err)
	}
	return c
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"

		if got, want := getVersionString(), "dev (built from source)"; got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{"nil", nil, types.ExitSuccess},
		{"plain error", errors.New("boom"), types.ExitFailure},
		{"exit error", &ExitError{Code: 3}, 3},
		{"wrapped exit error", errors.Join(errors.New("ctx"), &ExitError{Code: 2}), 2},
		{"out of range code", &ExitError{Code: 300}, types.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeOf(tt.err); got != tt.want {
				t.Errorf("exitCodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		want    string
		wantIss issue.Id
	}{
		{"no path", &rtpath.NoPathError{}, "rtsh x: p: No path given", issue.NoPathId},
		{"port on directory", &rtpath.PathError{Path: "/a/", Reason: "not a directory", Err: rtpath.ErrPortOnDirectory}, "rtsh x: p: Not a directory", issue.NotADirectoryId},
		{"bad path", &rtpath.PathError{Path: "/a", Reason: "empty path element"}, "rtsh x: p: Empty path element", 0},
		{"not found", &rttree.NotFoundError{Path: "/a"}, "rtsh x: p: No such directory or object", issue.PathNotFoundId},
		{"not a component", &rttree.TypeMismatchError{Path: "/a", Want: "component", Got: rttree.KindDirectory}, "rtsh x: p: Not a component", issue.NotAComponentId},
		{"no such set", &rttree.NoSuchSetError{Set: "night"}, "rtsh x: p: night: No such configuration set", issue.NoSuchConfSetId},
		{"no such param", &rttree.NoSuchParamError{Set: "default", Param: "speed"}, "rtsh x: p: speed: No such configuration parameter", issue.NoSuchConfParamId},
		{"bad index", &rttree.BadIndexError{Index: 4}, "rtsh x: p: No execution context at index 4", issue.BadExecContextId},
		{"bad binding", &rttree.BadPathError{Name: "a", Reason: "no such name registered"}, "rtsh x: p: No such name registered", 0},
		{"unreachable", &rttree.UnreachableError{Server: "remotehost"}, "rtsh x: p: remotehost: Name server unreachable", 0},
		{"other", errors.New("something odd"), "rtsh x: p: Something odd", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := describe("rtsh x", "p", tt.err)
			if got := exitCodeOf(err); got != types.ExitFailure {
				t.Errorf("exit code = %d, want %d", got, types.ExitFailure)
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("describe() = %T, want *issue.ActionableError inside", err)
			}
			if ae.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", ae.Error(), tt.want)
			}
			if ae.Issue != tt.wantIss {
				t.Errorf("Issue = %d, want %d", ae.Issue, tt.wantIss)
			}
			if !errors.Is(err, tt.err) {
				t.Error("describe() should keep the cause in the chain")
			}
		})
	}
}

func TestRun_ErrorLine(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	stderr := h.mustFail("find", "/nope")
	if got, want := strings.TrimSpace(stderr), "rtsh find: /nope: No such directory or object"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestRun_VerboseRendersIssue(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	stderr := h.mustFail("--verbose", "find", "/nope")
	if !strings.Contains(stderr, "rtsh find: /nope: No such directory or object") {
		t.Errorf("stderr should start with the diagnostic line, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "List what is there") {
		t.Errorf("stderr should contain the issue help, got:\n%s", stderr)
	}
}

func TestRun_VerboseFromConfig(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.cfg.UI.Verbose = true
	stderr := h.mustFail("find", "/nope")
	if !strings.Contains(stderr, "Error chain:") {
		t.Errorf("verbose config should print the error chain, got:\n%s", stderr)
	}
}

func TestRun_ConfigError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.cfgErr = issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource("/etc/rtsh/config.cue").
		WithMessage("schema validation failed").
		WithIssue(issue.ConfigLoadFailedId).
		BuildError()

	stderr := h.mustFail("pwd")
	if !strings.Contains(stderr, "schema validation failed") {
		t.Errorf("stderr = %q, want the configuration error", stderr)
	}
}

func TestRun_TreeLoadError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.tree = filepath.Join(t.TempDir(), "missing.yaml")
	stderr := h.mustFail("find", "/")
	if !strings.Contains(stderr, msgTreeLoadFailed) {
		t.Errorf("stderr = %q, want %q", stderr, msgTreeLoadFailed)
	}
}

func TestRun_Debug(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.mustRun("--debug", "pwd")
	if !strings.Contains(h.stderr.String(), "session ready") {
		t.Errorf("--debug should log the session setup, got:\n%s", h.stderr.String())
	}

	h.mustRun("pwd")
	if h.stderr.Len() != 0 {
		t.Errorf("stderr should be empty without --debug, got:\n%s", h.stderr.String())
	}
}

func TestRun_CwdEnvVarFromConfig(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.cfg.CwdEnvVar = "RTSH_DIR"
	h.env["RTSH_DIR"] = "/localhost/lab.host_cxt"
	h.env["RTCSH_CWD"] = "/ignored"

	if got := h.mustRun("pwd"); got != "/localhost/lab.host_cxt\n" {
		t.Errorf("pwd = %q", got)
	}
	if got := h.mustRun("cd", ".."); got != "export RTSH_DIR=\"/localhost\"\n" {
		t.Errorf("cd .. = %q", got)
	}
}
