// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/rtshell/rtshell/internal/issue"
	"github.com/rtshell/rtshell/internal/rttree"

	"github.com/spf13/cobra"
)

func (s *session) delCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "del PATH",
		Short: "Delete an entry from the namespace",
		Long: `Unbind an entry from its directory or name server.

The root, name servers and ports cannot be deleted. Components owned by a
manager must be deleted through the manager.`,
		Example: `  rtsh del /localhost/ConsoleIn0.rtc
  rtsh del lab.host_cxt`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: s.completePaths(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runDel(cmd, args)
		},
	}
}

func (s *session) runDel(cmd *cobra.Command, args []string) error {
	const op = "rtsh del"

	if len(args) == 0 || args[0] == "" {
		return fail(op, "", "No object specified", issue.NoPathId)
	}
	t, err := s.resolve(op, args)
	if err != nil {
		return err
	}

	switch {
	case t.Path.IsRoot():
		return fail(op, t.Raw, "Cannot delete the root directory", issue.ProtectedEntryId)
	case t.Path.HasPort():
		return fail(op, t.Raw, "Cannot delete ports", issue.ProtectedEntryId)
	case t.Path.Len() == 2:
		return fail(op, t.Raw, "Cannot delete name servers", issue.ProtectedEntryId,
			"Remove the name server from the snapshot file instead")
	}

	st, tree, err := s.openTree(cmd.Context(), op)
	if err != nil {
		return err
	}
	parent, err := tree.Get(t.Path.Parent())
	if err != nil {
		return describe(op, t.Raw, err)
	}
	if rttree.IsManager(parent) {
		return fail(op, t.Raw, "Cannot delete components from managers", issue.ProtectedEntryId,
			"Use the manager's own tools to delete the component")
	}
	dir, ok := parent.(rttree.Container)
	if !ok {
		return fail(op, t.Raw, "Parent is not a directory", issue.NotADirectoryId)
	}

	if err := dir.Unbind(t.Path.Name()); err != nil {
		return describe(op, t.Raw, err)
	}
	s.logger.Debug("unbound entry", "path", t.Path.Key())
	return s.saveTree(cmd.Context(), op, st, tree)
}
