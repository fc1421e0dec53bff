// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/rtshell/rtshell/internal/confset"
	"github.com/rtshell/rtshell/internal/issue"
	"github.com/rtshell/rtshell/internal/rttree"

	"github.com/spf13/cobra"
)

// Actions of the conf command.
const (
	confList = "list"
	confSet  = "set"
	confAct  = "act"
)

func (s *session) confCommand() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "conf PATH [list | set [SET] PARAM VALUE | act SET]",
		Short: "Show and change the configuration sets of a component",
		Long: `Show and change the configuration sets of a component.

  list                   list the sets, marking the active one with '*'
  set [SET] PARAM VALUE  change a parameter of SET (default: the active set)
  act SET                make SET the active set

Without an action the sets are listed. Changing a parameter of the active
set applies the new value to the running component.`,
		Example: `  rtsh conf ConsoleIn0.rtc
  rtsh conf ConsoleIn0.rtc list -l
  rtsh conf ConsoleIn0.rtc set max_speed 4
  rtsh conf ConsoleIn0.rtc set outdoor max_speed 8
  rtsh conf ConsoleIn0.rtc act outdoor`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires a component path")
			}
			return validateConfArgs(args[1:])
		},
		ValidArgsFunction: s.completeConf,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runConf(cmd, args, long)
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "also list the parameters of each set")

	return cmd
}

// validateConfArgs checks the action and its operand count.
func validateConfArgs(rest []string) error {
	if len(rest) == 0 {
		return nil
	}
	action, operands := rest[0], len(rest)-1
	switch action {
	case confList:
		if operands != 0 {
			return fmt.Errorf("list takes no arguments")
		}
	case confSet:
		if operands != 2 && operands != 3 {
			return fmt.Errorf("usage: set [SET] PARAM VALUE")
		}
	case confAct:
		if operands != 1 {
			return fmt.Errorf("usage: act SET")
		}
	default:
		return fmt.Errorf("unknown action %q (use list, set or act)", action)
	}
	return nil
}

func (s *session) runConf(cmd *cobra.Command, args []string, long bool) error {
	const op = "rtsh conf"

	t, err := s.resolve(op, args[:1])
	if err != nil {
		return err
	}
	if t.Path.HasPort() {
		return fail(op, t.Raw, msgNoSuchObject, issue.NotAComponentId)
	}
	if t.Path.Trailing {
		return fail(op, t.Raw, msgNotAnObject, issue.NotAComponentId)
	}

	st, tree, err := s.openTree(cmd.Context(), op)
	if err != nil {
		return err
	}
	comp, err := tree.GetComponent(t.Path)
	if err != nil {
		return describe(op, t.Raw, err)
	}

	action := confList
	if len(args) > 1 {
		action = args[1]
	}
	operands := args[min(len(args), 2):]

	var m confset.Manager
	switch action {
	case confSet:
		var set string
		if len(operands) == 3 {
			set, operands = operands[0], operands[1:]
		}
		if err := m.SetValue(comp, set, operands[0], operands[1]); err != nil {
			return describe(op, t.Raw, err)
		}
		s.logger.Debug("set configuration value", "component", comp.FullPath(), "set", set, "param", operands[0])
		return s.saveTree(cmd.Context(), op, st, tree)
	case confAct:
		if err := m.Activate(comp, operands[0]); err != nil {
			return describe(op, t.Raw, err)
		}
		s.logger.Debug("activated configuration set", "component", comp.FullPath(), "set", operands[0])
		return s.saveTree(cmd.Context(), op, st, tree)
	default:
		out := cmd.OutOrStdout()
		lines := confset.Format(m.List(comp, long), long, s.confSetStyler(out))
		if len(lines) > 0 {
			fmt.Fprintln(out, strings.Join(lines, "\n"))
		}
		return nil
	}
}

// completeConf completes the component path, then the action, then set names.
func (s *session) completeConf(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return s.completePaths(false)(cmd, args, toComplete)
	case 1:
		return []string{
			confList + "\tlist the configuration sets",
			confSet + "\tchange a parameter",
			confAct + "\tactivate a configuration set",
		}, cobra.ShellCompDirectiveNoFileComp
	case 2:
		if args[1] != confAct && args[1] != confSet {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		comp := s.componentForCompletion(cmd, args[0])
		if comp == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var names []string
		for _, e := range (confset.Manager{}).List(comp, false) {
			names = append(names, e.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// componentForCompletion looks up raw for completion, returning nil on any failure.
func (s *session) componentForCompletion(cmd *cobra.Command, raw string) *rttree.Component {
	tree := s.treeForCompletion(cmd)
	if tree == nil {
		return nil
	}
	t, err := s.resolve("rtsh conf", []string{raw})
	if err != nil {
		return nil
	}
	comp, err := tree.GetComponent(t.Path)
	if err != nil {
		return nil
	}
	return comp
}
