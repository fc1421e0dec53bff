// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/rtshell/rtshell/internal/pattern"
	"github.com/rtshell/rtshell/internal/query"

	"github.com/spf13/cobra"
)

type findFlags struct {
	names    []string
	inames   []string
	types    string
	maxDepth int
}

func (s *session) findCommand() *cobra.Command {
	var flags findFlags

	cmd := &cobra.Command{
		Use:   "find PATH",
		Short: "Search the namespace",
		Long: `Search the namespace below PATH for entries that match the given filters.

Name patterns are matched anywhere in the full path of an entry. '*' matches
any sequence and '?' a single character. A path matches when any --name or
--iname pattern matches it.

Type letters: c (component), d (directory, manager or name server),
m (manager), n (name server).`,
		Example: `  rtsh find / --type c
  rtsh find /localhost --name 'Console*'
  rtsh find . --iname '*motor*' --maxdepth 2`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: s.completePaths(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runFind(cmd, args, flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.names, "name", nil, "case-sensitive pattern to match against full paths (repeatable)")
	cmd.Flags().StringArrayVar(&flags.inames, "iname", nil, "case-insensitive pattern to match against full paths (repeatable)")
	cmd.Flags().StringVar(&flags.types, "type", "", "type letters to search for: c, d, m, n (default from config, cdmn)")
	cmd.Flags().IntVar(&flags.maxDepth, "maxdepth", 0, "maximum number of levels to search below PATH (0 is unlimited)")

	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"c\tcomponents",
			"d\tdirectories, managers and name servers",
			"m\tmanagers",
			"n\tname servers",
			"cdmn\teverything",
		}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (s *session) runFind(cmd *cobra.Command, args []string, flags findFlags) error {
	const op = "rtsh find"

	t, err := s.resolve(op, args)
	if err != nil {
		return err
	}

	letters := flags.types
	if letters == "" {
		letters = string(s.cfg.Find.DefaultTypes)
	}
	types, err := query.ParseTypes(letters)
	if err != nil {
		return fail(op, letters, capitalize(err.Error()), 0, "Use any combination of c, d, m and n")
	}
	if flags.maxDepth < 0 {
		return fail(op, fmt.Sprint(flags.maxDepth), capitalize(query.ErrInvalidDepth.Error()), 0)
	}

	patterns, err := pattern.CompileAll(flags.names, flags.inames)
	if err != nil {
		return describe(op, t.Raw, err)
	}

	_, tree, err := s.openTree(cmd.Context(), op)
	if err != nil {
		return err
	}
	root, err := query.Root(tree, t.Abs)
	if err != nil {
		return describe(op, t.Raw, err)
	}

	filter := query.Filter{
		Types:    types,
		Patterns: patterns,
		MaxDepth: flags.maxDepth,
		CmdPath:  t.Raw,
	}
	s.logger.Debug("searching", "root", root.FullPath(), "types", types, "patterns", len(patterns), "maxdepth", flags.maxDepth)

	out := cmd.OutOrStdout()
	for p, err := range query.Run(root, filter) {
		if err != nil {
			return describe(op, t.Raw, err)
		}
		fmt.Fprintln(out, p)
	}
	return nil
}
