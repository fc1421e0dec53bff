// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/rtshell/rtshell/internal/issue"
	"github.com/rtshell/rtshell/internal/rtpath"
	"github.com/rtshell/rtshell/internal/rttree"
	"github.com/rtshell/rtshell/internal/shellenv"

	"github.com/spf13/cobra"
)

func (s *session) cdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cd [PATH]",
		Short: "Change the working directory",
		Long: `Change the working directory of the namespace.

rtsh cannot change the environment of the calling shell, so cd prints the
assignment for the shell to evaluate. Without a path it changes to the root.`,
		Example: `  eval "$(rtsh cd /localhost)"
  eval "$(rtsh cd lab.host_cxt)"
  eval "$(rtsh cd ..)"`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: s.completePaths(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := s.changeDir(cmd, args)
			if err != nil {
				return err
			}
			return s.printCwdLine(cmd, dir)
		},
	}
}

func (s *session) pwdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pwd",
		Short: "Print the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), s.cwd.OrRoot())
			return nil
		},
	}
}

// changeDir computes the new working directory.
func (s *session) changeDir(cmd *cobra.Command, args []string) (string, error) {
	const op = "rtsh cd"

	if len(args) == 0 || args[0] == "" {
		return rtpath.Root, nil
	}
	switch args[0] {
	case ".", "./", "..", "../":
		// Relative moves never touch the tree.
		dir, err := s.cwd.Resolve(args[0])
		if err != nil {
			return "", describe(op, args[0], err)
		}
		return dir, nil
	}

	t, err := s.resolve(op, args)
	if err != nil {
		return "", err
	}
	if t.Path.HasPort() {
		return "", fail(op, t.Raw, msgNotADirectory, issue.NotADirectoryId)
	}
	if t.Path.IsRoot() {
		return rtpath.Root, nil
	}

	_, tree, err := s.openTree(cmd.Context(), op)
	if err != nil {
		return "", err
	}
	n, err := tree.Get(t.Path)
	if err != nil {
		return "", describe(op, t.Raw, err)
	}
	if !rttree.IsDirectory(n) {
		return "", fail(op, t.Raw, msgNotADirectory, issue.NotADirectoryId)
	}
	return n.FullPath(), nil
}

// printCwdLine prints the shell assignment of the working directory variable.
func (s *session) printCwdLine(cmd *cobra.Command, dir string) error {
	dialect := shellenv.Detect(s.app.goos, s.app.getenv("SHELL"))
	line, err := dialect.SetLine(s.cwdVar(), dir)
	if err != nil {
		return describe("rtsh cd", dir, err)
	}
	s.logger.Debug("changing directory", "dir", dir, "dialect", dialect)
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
