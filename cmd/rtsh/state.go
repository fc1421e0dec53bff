// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/rtshell/rtshell/internal/issue"
	"github.com/rtshell/rtshell/internal/rttree"

	"github.com/spf13/cobra"
)

const (
	stateActivate stateAction = iota
	stateDeactivate
	stateReset
)

// stateAction is an execution-context state change.
type stateAction int

func (a stateAction) name() string {
	switch a {
	case stateActivate:
		return "act"
	case stateDeactivate:
		return "deact"
	default:
		return "reset"
	}
}

func (a stateAction) short() string {
	switch a {
	case stateActivate:
		return "Activate a component"
	case stateDeactivate:
		return "Deactivate a component"
	default:
		return "Reset a component out of the error state"
	}
}

// apply runs the state change on c.
func (a stateAction) apply(c *rttree.Component, index int) error {
	switch a {
	case stateActivate:
		return c.ActivateIn(index)
	case stateDeactivate:
		return c.DeactivateIn(index)
	default:
		return c.ResetIn(index)
	}
}

// preconditionMessage is printed when apply fails with rttree.ErrPrecondition.
func (a stateAction) preconditionMessage() string {
	if a == stateReset {
		return "Component is not in the error state"
	}
	return "Component is in the error state"
}

func (s *session) stateCommand(action stateAction) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:               action.name() + " PATH",
		Short:             action.short(),
		Example:           "  rtsh " + action.name() + " ConsoleIn0.rtc\n  rtsh " + action.name() + " /localhost/ConsoleIn0.rtc -e 1",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: s.completePaths(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runState(cmd, args, action, index)
		},
	}

	cmd.Flags().IntVarP(&index, "exec_context", "e", 0, "index of the execution context to change the state in")

	return cmd
}

func (s *session) runState(cmd *cobra.Command, args []string, action stateAction, index int) error {
	op := "rtsh " + action.name()

	t, err := s.resolve(op, args)
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
		if errors.Is(err, rttree.ErrTypeMismatch) {
			return fail(op, t.Raw, msgNotAnObject, issue.NotAComponentId)
		}
		return describe(op, t.Raw, err)
	}

	if err := action.apply(comp, index); err != nil {
		if errors.Is(err, rttree.ErrPrecondition) {
			return fail(op, t.Raw, action.preconditionMessage(), 0)
		}
		return describe(op, t.Raw, err)
	}
	state, _ := comp.StateIn(index)
	s.logger.Debug("changed execution context state", "component", comp.FullPath(), "index", index, "state", state)
	return s.saveTree(cmd.Context(), op, st, tree)
}
