// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies an issue in the catalog. The zero value means "no issue".
type Id int

const (
	NoPathId Id = iota + 1
	PathNotFoundId
	NotADirectoryId
	NotAComponentId
	NoSuchConfSetId
	NoSuchConfParamId
	TreeLoadFailedId
	ConfigLoadFailedId
	ProtectedEntryId
	BadExecContextId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // project documentation
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue's Markdown with the named glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	noPathIssue = &Issue{
		id: NoPathId,
		mdMsg: `
# No path given!

This command needs a path, and there is no current working directory to
fall back to.

## Things you can try:
- Pass the path explicitly:
~~~
$ rtsh conf /localhost/ConsoleIn0.rtc
~~~

- Or change into a directory first (the shell wrapper evaluates the output):
~~~
$ eval "$(rtsh cd /localhost)"
~~~`,
	}

	pathNotFoundIssue = &Issue{
		id: PathNotFoundId,
		mdMsg: `
# No such directory or object!

Nothing is registered under that path.

## Things you can try:
- List what is there:
~~~
$ rtsh find / --maxdepth 2
~~~

- Check the working directory that relative paths start from:
~~~
$ rtsh pwd
~~~

- Ports are addressed with a colon, not a separator: ` + "`Comp0.rtc:out`",
	}

	notADirectoryIssue = &Issue{
		id: NotADirectoryId,
		mdMsg: `
# Not a directory!

The path names a component or a port, but the command needs something that
contains other entries: a name server, a directory or a manager.

## Things you can try:
- Drop the trailing ` + "`/`" + ` from a component path
- Use the parent directory instead`,
	}

	notAComponentIssue = &Issue{
		id: NotAComponentId,
		mdMsg: `
# Not an object!

The command works on components only, and the path names a directory, a
name server, a manager or a port.

## Things you can try:
- Find the components below the path:
~~~
$ rtsh find <path> --type c
~~~`,
	}

	noSuchConfSetIssue = &Issue{
		id: NoSuchConfSetId,
		mdMsg: `
# No such configuration set!

The component has no configuration set with that name.

## Things you can try:
- List the sets; the active one is marked with ` + "`*`" + `:
~~~
$ rtsh conf <component> list
~~~`,
	}

	noSuchConfParamIssue = &Issue{
		id: NoSuchConfParamId,
		mdMsg: `
# No such configuration parameter!

Parameters can only be changed, not created. The parameter must already
exist in the configuration set.

## Things you can try:
- Show the parameters of every set:
~~~
$ rtsh conf <component> list -l
~~~`,
	}

	treeLoadFailedIssue = &Issue{
		id: TreeLoadFailedId,
		mdMsg: `
# Failed to load the namespace!

rtsh reads the namespace from a snapshot file (CUE, TOML, YAML or JSON).

## Things you can try:
- Point rtsh at the snapshot:
~~~
$ rtsh --tree ./namespace.yaml find /
~~~

- Or set it once in the configuration:
~~~cue
tree_file: "/path/to/namespace.cue"
~~~

- Check the reported field against the snapshot schema`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your rtsh configuration file could not be loaded.

## Things you can try:
- Show where rtsh looks for it:
~~~
$ rtsh config path
~~~

- Write a fresh default configuration:
~~~
$ rtsh config init
~~~

- Run with ` + "`--config`" + ` to use a different file`,
	}

	protectedEntryIssue = &Issue{
		id: ProtectedEntryId,
		mdMsg: `
# Cannot delete that entry!

` + "`rtsh del`" + ` only unbinds names from directories and name servers.

## Not allowed:
- The root directory and name servers
- Ports (they belong to their component)
- Components owned by a manager; ask the manager to delete them`,
	}

	badExecContextIssue = &Issue{
		id: BadExecContextId,
		mdMsg: `
# Bad execution context!

The component does not take part in an execution context at that index, or
it cannot change state from its current one. A component in the error
state must be reset before it can be activated again.

## Things you can try:
- Reset first:
~~~
$ rtsh reset <component> -e 0
~~~`,
	}

	issues = map[Id]*Issue{
		noPathIssue.Id():           noPathIssue,
		pathNotFoundIssue.Id():     pathNotFoundIssue,
		notADirectoryIssue.Id():    notADirectoryIssue,
		notAComponentIssue.Id():    notAComponentIssue,
		noSuchConfSetIssue.Id():    noSuchConfSetIssue,
		noSuchConfParamIssue.Id():  noSuchConfParamIssue,
		treeLoadFailedIssue.Id():   treeLoadFailedIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		protectedEntryIssue.Id():   protectedEntryIssue,
		badExecContextIssue.Id():   badExecContextIssue,
	}
)

// Values returns every issue ordered by id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the issue with the given id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
