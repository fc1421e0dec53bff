// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"
)

func TestFind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cwd  string
		args []string
		want []string
	}{
		{
			name: "components below root",
			args: []string{"/", "--type", "c"},
			want: []string{
				"localhost/ConsoleIn0.rtc",
				"localhost/ConsoleOut0.rtc",
				"localhost/lab.host_cxt/Sensor0.rtc",
				"localhost/lab.host_cxt/motor.host_cxt/Motor0.rtc",
				"localhost/manager.mgr/Motor1.rtc",
			},
		},
		{
			name: "directories one level down include the search root",
			args: []string{"/localhost", "--type", "d", "--maxdepth", "1"},
			want: []string{"localhost", "/lab.host_cxt", "/manager.mgr"},
		},
		{
			name: "name servers",
			args: []string{"/", "--type", "n"},
			want: []string{"localhost", "remotehost"},
		},
		{
			name: "managers",
			args: []string{"/", "--type", "m"},
			want: []string{"localhost/manager.mgr"},
		},
		{
			name: "case-sensitive name",
			args: []string{"/", "--name", "Motor*"},
			want: []string{
				"localhost/lab.host_cxt/motor.host_cxt/Motor0.rtc",
				"localhost/manager.mgr/Motor1.rtc",
			},
		},
		{
			name: "case-insensitive name",
			args: []string{"/", "--iname", "MOTOR.HOST*"},
			want: []string{
				"localhost/lab.host_cxt/motor.host_cxt",
				"localhost/lab.host_cxt/motor.host_cxt/Motor0.rtc",
			},
		},
		{
			name: "patterns are alternatives",
			args: []string{"/", "--type", "c", "--name", "Sensor?", "--iname", "consoleout*"},
			want: []string{
				"localhost/ConsoleOut0.rtc",
				"localhost/lab.host_cxt/Sensor0.rtc",
			},
		},
		{
			name: "question mark matches exactly one character",
			args: []string{"/", "--name", "Console?0"},
			want: nil,
		},
		{
			name: "relative path shows full paths",
			cwd:  "/localhost",
			args: []string{"lab.host_cxt", "--type", "c"},
			want: []string{
				"/localhost/lab.host_cxt/Sensor0.rtc",
				"/localhost/lab.host_cxt/motor.host_cxt/Motor0.rtc",
			},
		},
		{
			name: "working directory when no path is given",
			cwd:  "/localhost/lab.host_cxt",
			args: []string{"--type", "c"},
			want: []string{
				"/Sensor0.rtc",
				"/motor.host_cxt/Motor0.rtc",
			},
		},
		{
			name: "search root is a component",
			args: []string{"/localhost/ConsoleIn0.rtc"},
			want: []string{"ConsoleIn0.rtc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			if tt.cwd != "" {
				h.env["RTCSH_CWD"] = tt.cwd
			}
			out := h.mustRun(append([]string{"find"}, tt.args...)...)
			got := strings.Fields(out)
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("find output:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestFind_DefaultTypesFromConfig(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.cfg.Find.DefaultTypes = "n"
	if got := h.mustRun("find", "/"); got != "localhost\nremotehost\n" {
		t.Errorf("find = %q", got)
	}
}

func TestFind_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing root", []string{"/nope"}, "rtsh find: /nope: No such directory or object"},
		{"component with trailing separator", []string{"/localhost/ConsoleIn0.rtc/"}, "rtsh find: /localhost/ConsoleIn0.rtc/: Not a directory"},
		{"port", []string{"/localhost/ConsoleIn0.rtc:out"}, "rtsh find: /localhost/ConsoleIn0.rtc:out: Cannot search in a port"},
		{"no path and no cwd", nil, "rtsh find: No path given"},
		{"bad type", []string{"/", "--type", "cx"}, "rtsh find: cx: Invalid type"},
		{"negative depth", []string{"/", "--maxdepth", "-1"}, "rtsh find: -1: Maximum depth must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			stderr := h.mustFail(append([]string{"find"}, tt.args...)...)
			if !strings.HasPrefix(strings.TrimSpace(stderr), tt.want) {
				t.Errorf("stderr = %q, want prefix %q", stderr, tt.want)
			}
		})
	}
}

func TestFind_UnreachableServer(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.tree = "../../internal/rttree/store/testdata/namespace.yaml"

	stderr := h.mustFail("find", "/", "--type", "c")
	if !strings.Contains(stderr, "Name server unreachable") {
		t.Errorf("stderr = %q, want the unreachable server", stderr)
	}
	// Results found before the failing server are still printed.
	if !strings.Contains(h.stdout.String(), "localhost/ConsoleIn0.rtc") {
		t.Errorf("stdout = %q, want the reachable components", h.stdout.String())
	}
}
