// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

var allIds = []Id{
	NoPathId,
	PathNotFoundId,
	NotADirectoryId,
	NotAComponentId,
	NoSuchConfSetId,
	NoSuchConfParamId,
	TreeLoadFailedId,
	ConfigLoadFailedId,
	ProtectedEntryId,
	BadExecContextId,
}

// stubRender replaces the glamour renderer with the identity function for
// the duration of the test.
func stubRender(t *testing.T) {
	t.Helper()
	original := render
	render = func(in string, _ string) (string, error) { return in, nil }
	t.Cleanup(func() { render = original })
}

func TestId_Constants(t *testing.T) {
	seen := make(map[Id]bool)
	for _, id := range allIds {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// The zero Id means "no issue".
	if NoPathId != 1 {
		t.Errorf("NoPathId = %d, want 1", NoPathId)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{NoPathId, false, "No path given"},
		{PathNotFoundId, false, "No such directory or object"},
		{NotADirectoryId, false, "Not a directory"},
		{NotAComponentId, false, "Not an object"},
		{NoSuchConfSetId, false, "No such configuration set"},
		{NoSuchConfParamId, false, "No such configuration parameter"},
		{TreeLoadFailedId, false, "Failed to load the namespace"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{ProtectedEntryId, false, "Cannot delete"},
		{BadExecContextId, false, "Bad execution context"},
		{Id(0), true, "zero"},
		{Id(9999), true, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("Get(%d).Id() = %d", tt.id, issue.Id())
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	issues := Values()

	if len(issues) != len(allIds) {
		t.Fatalf("Values() returned %d issues, want %d", len(issues), len(allIds))
	}
	for i, issue := range issues {
		if issue.Id() != allIds[i] {
			t.Errorf("Values()[%d].Id() = %d, want %d (ordered by id)", i, issue.Id(), allIds[i])
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has empty MarkdownMsg", issue.Id())
		}
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	issue := &Issue{
		id:       Id(9999),
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	docs := issue.DocLinks()
	docs[0] = "changed"
	ext := issue.ExtLinks()
	ext[0] = "changed"

	if issue.DocLinks()[0] != "https://docs.example.com" {
		t.Error("DocLinks() should return a clone")
	}
	if issue.ExtLinks()[0] != "https://external.example.com" {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	stubRender(t)

	testIssue := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue\n\nThis is a test.",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	for _, want := range []string{"See also", "- <https://docs.example.com>\n", "- <https://external.example.com>\n"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Render() output should contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	stubRender(t)

	rendered, err := Get(PathNotFoundId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
	if !strings.Contains(rendered, "rtsh find") {
		t.Error("Render() output should contain the catalog text")
	}
}

// TestAllIssuesRenderWithGlamour runs the real renderer over the catalog.
func TestAllIssuesRenderWithGlamour(t *testing.T) {
	for _, issue := range Values() {
		rendered, err := issue.Render("notty")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", issue.Id(), err)
			continue
		}
		if strings.TrimSpace(rendered) == "" {
			t.Errorf("issue %d rendered to empty string", issue.Id())
		}
	}
}
