// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"strings"

	"github.com/rtshell/rtshell/internal/rtpath"
	"github.com/rtshell/rtshell/internal/rttree"

	"github.com/spf13/cobra"
)

// newCompletionCommand creates the `rtsh completion` command.
func newCompletionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for rtsh.

Path arguments complete against the entries of the namespace snapshot.

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(rtsh completion bash)"

` + SubtitleStyle.Render("Zsh:") + `
  # Add to ~/.zshrc:
  eval "$(rtsh completion zsh)"

` + SubtitleStyle.Render("Fish:") + `
  rtsh completion fish > ~/.config/fish/completions/rtsh.fish

` + SubtitleStyle.Render("PowerShell:") + `
  rtsh completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations:           map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(app.stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(app.stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(app.stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(app.stdout)
			}
			return nil
		},
	}
}

// treeForCompletion loads the namespace for a completion request. Completion
// runs without PersistentPreRunE, so the session is initialized here.
func (s *session) treeForCompletion(cmd *cobra.Command) *rttree.Tree {
	if err := s.init(cmd); err != nil {
		return nil
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	_, tree, err := s.openTree(ctx, "rtsh __complete")
	if err != nil {
		s.logger.Debug("completion without namespace", "err", err)
		return nil
	}
	return tree
}

// completePaths returns a completion function for a single path argument.
// Directories are offered with a trailing separator; components only when
// dirsOnly is false.
func (s *session) completePaths(dirsOnly bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		tree := s.treeForCompletion(cmd)
		if tree == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return pathCandidates(tree, s.cwd, toComplete, dirsOnly), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}

// pathCandidates lists the entries that can complete toComplete.
func pathCandidates(tree *rttree.Tree, cwd rtpath.WorkingDir, toComplete string, dirsOnly bool) []string {
	dirPart, prefix := "", toComplete
	if i := strings.LastIndex(toComplete, rtpath.Separator); i >= 0 {
		dirPart, prefix = toComplete[:i+1], toComplete[i+1:]
	}

	base := cwd.OrRoot()
	if dirPart != "" {
		abs, err := cwd.Resolve(dirPart)
		if err != nil {
			return nil
		}
		base = abs
	}
	p, err := rtpath.Parse(base)
	if err != nil {
		return nil
	}
	n, err := tree.Get(p)
	if err != nil || !rttree.IsDirectory(n) {
		return nil
	}
	children, err := n.Children()
	if err != nil {
		return nil
	}

	var out []string
	for _, c := range children {
		if !strings.HasPrefix(c.Name(), prefix) {
			continue
		}
		switch {
		case rttree.IsDirectory(c):
			out = append(out, dirPart+c.Name()+rtpath.Separator)
		case !dirsOnly:
			out = append(out, dirPart+c.Name())
		}
	}
	return out
}
