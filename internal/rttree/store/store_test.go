// SPDX-License-Identifier: MPL-2.0

package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rtshell/rtshell/internal/rtpath"
	"github.com/rtshell/rtshell/internal/rttree"
	"github.com/rtshell/rtshell/internal/rttree/store"
	"github.com/rtshell/rtshell/internal/testutil"
	"github.com/rtshell/rtshell/internal/testutil/rttreetest"
)

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    store.Format
		wantErr bool
	}{
		{"tree.cue", store.FormatCUE, false},
		{"/etc/rtsh/tree.toml", store.FormatTOML, false},
		{"tree.yaml", store.FormatYAML, false},
		{"tree.YML", store.FormatYAML, false},
		{"tree.json", store.FormatJSON, false},
		{"tree.xml", "", true},
		{"tree", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := store.FormatFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, store.ErrUnsupportedFormat) {
				t.Errorf("error should wrap ErrUnsupportedFormat, got %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLoad_AllFormats loads the same namespace written in every format.
func TestLoad_AllFormats(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"namespace.cue", "namespace.toml", "namespace.yaml", "namespace.json"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := store.Open(filepath.Join("testdata", name), nil)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			tree, err := s.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			checkFixture(t, tree)
		})
	}
}

func checkFixture(t *testing.T, tree *rttree.Tree) {
	t.Helper()

	c, err := tree.GetComponent(rtpath.MustParse("/localhost/ConsoleIn0.rtc"))
	if err != nil {
		t.Fatalf("GetComponent() error = %v", err)
	}
	if c.TypeName != "ConsoleIn" || c.Vendor != "Example" {
		t.Errorf("profile = %q/%q, want ConsoleIn/Example", c.TypeName, c.Vendor)
	}
	if got := c.ActiveConfSetName(); got != "outdoor" {
		t.Errorf("active set = %q, want outdoor", got)
	}
	if got := c.AppliedConfig()["max_speed"]; got != "3" {
		t.Errorf("applied max_speed = %q, want 3", got)
	}
	if got := c.Activations(); got != 0 {
		t.Errorf("loading should not count as an activation, got %d", got)
	}
	if sets := c.ConfSets(); sets["default"].Description != "Default configuration" {
		t.Errorf("default description = %q", sets["default"].Description)
	}
	if p, ok := c.Port("out"); !ok || p.Type != "DataOutPort" {
		t.Errorf("Port(out) = %+v, %v", p, ok)
	}
	if state, err := c.StateIn(0); err != nil || state != rttree.StateActive {
		t.Errorf("StateIn(0) = %v, %v; want active", state, err)
	}
	if ecs := c.ExecContexts(); len(ecs) != 1 || ecs[0].Rate != 1000 || ecs[0].Kind != "periodic" {
		t.Errorf("ExecContexts() = %+v", ecs)
	}

	mgr, err := tree.Get(rtpath.MustParse("/localhost/manager.mgr"))
	if err != nil {
		t.Fatalf("Get(manager) error = %v", err)
	}
	if m, ok := mgr.(*rttree.Manager); !ok || !reflect.DeepEqual(m.Loadable, []string{"ConsoleIn", "Motor"}) {
		t.Errorf("manager = %#v", mgr)
	}
	if !tree.Has(rtpath.MustParse("/localhost/lab.host_cxt/Sensor0.rtc")) {
		t.Error("Sensor0.rtc should be bound under lab.host_cxt")
	}

	servers := tree.NameServers()
	if len(servers) != 2 || servers[0].Address != "localhost:2809" || servers[1].Address != "remotehost" {
		t.Fatalf("NameServers() = %v", servers)
	}
	if !servers[1].Unreachable() {
		t.Error("remotehost should be unreachable")
	}
	if _, err := servers[1].Children(); !errors.Is(err, rttree.ErrUnreachable) {
		t.Errorf("Children() of unreachable server error = %v, want ErrUnreachable", err)
	}
}

func TestDecode_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format store.Format
		data   string
		want   string
	}{
		{
			name:   "unknown kind",
			format: store.FormatYAML,
			data:   "servers:\n  - name: ns\n    children:\n      - name: x\n        kind: robot\n",
			want:   "servers[0].children[0].kind",
		},
		{
			name:   "name with port separator",
			format: store.FormatJSON,
			data:   `{"servers": [{"name": "ns:1"}]}`,
			want:   "servers[0].name",
		},
		{
			name:   "unknown field",
			format: store.FormatCUE,
			data:   `servers: [{name: "ns", colour: "red"}]`,
			want:   "colour",
		},
		{
			name:   "bad exec state",
			format: store.FormatTOML,
			data:   "[[servers]]\nname = \"ns\"\n[[servers.children]]\nname = \"c\"\nkind = \"component\"\n[[servers.children.exec_contexts]]\nstate = \"sleeping\"\n",
			want:   "state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := store.Decode([]byte(tt.data), tt.format, "tree."+tt.format.String())
			if err == nil {
				t.Fatal("Decode() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
			if !strings.Contains(err.Error(), "tree."+tt.format.String()) {
				t.Errorf("error %q should name the file", err)
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	for _, format := range []store.Format{store.FormatCUE, store.FormatYAML, store.FormatTOML} {
		doc, err := store.Decode(nil, format, "empty")
		if err != nil {
			t.Fatalf("Decode(empty %s) error = %v", format, err)
		}
		if doc.Servers == nil || len(doc.Servers) != 0 {
			t.Errorf("Decode(empty %s).Servers = %#v, want empty slice", format, doc.Servers)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  store.Document
		want string
	}{
		{
			name: "component with children",
			doc: store.Document{Servers: []store.ServerDoc{{Name: "ns", Children: []store.NodeDoc{{
				Name: "c.rtc", Kind: "component",
				Children: []store.NodeDoc{{Name: "x", Kind: "directory"}},
			}}}}},
			want: "/ns/c.rtc",
		},
		{
			name: "undefined active set",
			doc: store.Document{Servers: []store.ServerDoc{{Name: "ns", Children: []store.NodeDoc{{
				Name: "c.rtc", Kind: "component", ActiveSet: "missing",
				ConfSets: []store.ConfSetDoc{{Name: "default"}},
			}}}}},
			want: `active set "missing"`,
		},
		{
			name: "nested name server",
			doc: store.Document{Servers: []store.ServerDoc{{Name: "ns", Children: []store.NodeDoc{{
				Name: "inner", Kind: "nameserver",
			}}}}},
			want: "cannot appear below a name server",
		},
		{
			name: "duplicate name",
			doc: store.Document{Servers: []store.ServerDoc{{Name: "ns", Children: []store.NodeDoc{
				{Name: "d", Kind: "directory"},
				{Name: "d", Kind: "directory"},
			}}}},
			want: "/ns/d",
		},
		{
			name: "component under manager accepted, directory refused",
			doc: store.Document{Servers: []store.ServerDoc{{Name: "ns", Children: []store.NodeDoc{{
				Name: "m.mgr", Kind: "manager",
				Children: []store.NodeDoc{{Name: "d", Kind: "directory"}},
			}}}}},
			want: "/ns/m.mgr/d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := store.Build(&tt.doc)
			if !errors.Is(err, store.ErrInvalidDocument) {
				t.Fatalf("Build() error = %v, want ErrInvalidDocument", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

// TestSnapshot_RoundTrip encodes the sample tree in every format and checks
// that decoding and rebuilding yields the same snapshot.
func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	want, err := store.Snapshot(rttreetest.Sample(t))
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	for _, format := range []store.Format{store.FormatCUE, store.FormatTOML, store.FormatYAML, store.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			data, err := store.Encode(want, format)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			doc, err := store.Decode(data, format, "snapshot")
			if err != nil {
				t.Fatalf("Decode() error = %v\n%s", err, data)
			}
			tree, err := store.Build(doc)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			got, err := store.Snapshot(tree)
			if err != nil {
				t.Fatalf("Snapshot() error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip through %s changed the snapshot\n got: %+v\nwant: %+v", format, got, want)
			}
		})
	}
}

func TestStore_SaveAndReload(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".cue", ".toml", ".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			src := testutil.MustReadFile(t, filepath.Join("testdata", "namespace"+ext))
			path := testutil.MustWriteFile(t, filepath.Join(t.TempDir(), "tree"+ext), src)

			s, err := store.Open(path, nil)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			ctx := context.Background()
			tree, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			c, err := tree.GetComponent(rtpath.MustParse("/localhost/ConsoleIn0.rtc"))
			if err != nil {
				t.Fatalf("GetComponent() error = %v", err)
			}
			if err := c.SetConfSetValue("default", "gain", "0.9"); err != nil {
				t.Fatalf("SetConfSetValue() error = %v", err)
			}
			ns := tree.NameServers()[0]
			if err := ns.Unbind("manager.mgr"); err != nil {
				t.Fatalf("Unbind() error = %v", err)
			}
			if err := s.Save(ctx, tree); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			reloaded, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("reload error = %v\n%s", err, testutil.MustReadFile(t, path))
			}
			c, err = reloaded.GetComponent(rtpath.MustParse("/localhost/ConsoleIn0.rtc"))
			if err != nil {
				t.Fatalf("GetComponent() after reload error = %v", err)
			}
			if got := c.ConfSets()["default"].Data["gain"]; got != "0.9" {
				t.Errorf("gain after reload = %q, want 0.9", got)
			}
			if got := c.ActiveConfSetName(); got != "outdoor" {
				t.Errorf("active set after reload = %q, want outdoor", got)
			}
			if reloaded.Has(rtpath.MustParse("/localhost/manager.mgr")) {
				t.Error("manager.mgr should be gone after reload")
			}
			if !reloaded.NameServers()[1].Unreachable() {
				t.Error("remotehost should stay unreachable")
			}

			entries, err := os.ReadDir(filepath.Dir(path))
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("save left temporary files behind: %v", entries)
			}
		})
	}
}

func TestStore_LoadCanceled(t *testing.T) {
	t.Parallel()

	s, err := store.Open(filepath.Join("testdata", "namespace.yaml"), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
	if err := s.Save(ctx, rttree.New()); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want context.Canceled", err)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	s, err := store.Open(filepath.Join(t.TempDir(), "absent.toml"), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := s.Load(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
