package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pants/pkg/errors"
	"github.com/matzehuels/pants/pkg/pants"
	"github.com/matzehuels/pants/pkg/puzzle"
)

// showCommand prints a state and the result of each move applied to it.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <pointer> <values...>",
		Short: "Show a state and where each move leads",
		Example: `  pants show 2 1 2 3 4 5
  pants show 0 1 2 3`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := puzzle.ParseArgs(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, styleTitle.Render("State")+" "+renderState(s))
			printDetail(w, "pointer %d, value %v", s.Pointer(), s.Current())
			fmt.Fprintln(w)
			for _, m := range pants.Moves() {
				next, ok := s.Apply(m)
				if !ok {
					printKeyValue(w, m.String(), styleDim.Render("illegal"))
					continue
				}
				printKeyValue(w, m.String(), renderState(next))
			}
			return nil
		},
	}
}

// moveCommand applies a single named move and prints the resulting state.
func (c *CLI) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <move> <pointer> <values...>",
		Short: "Apply one move to a state",
		Long: `Apply one move to a state and print the result.

The move is one of ` + moveNames() + `.
An illegal move exits with an INVALID_MOVE error.`,
		Example: `  pants move swap-left 2 1 2 3 4 5`,
		Args:    cobra.MinimumNArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return strings.Split(moveNames(), ", "), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := pants.ParseMove(args[0])
			if err != nil {
				return err
			}
			s, err := puzzle.ParseArgs(args[1:])
			if err != nil {
				return err
			}
			next, ok := s.Apply(m)
			if !ok {
				return errors.New(errors.ErrCodeInvalidMove, "%s is not legal from %v", m, s)
			}
			loggerFromContext(cmd.Context()).Debug("applied move", "move", m, "from", s, "to", next)
			fmt.Fprintln(cmd.OutOrStdout(), renderState(next))
			return nil
		},
	}
}

// childrenCommand lists the children of the path given as arguments.
func (c *CLI) childrenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "children <pointer>:<v,v,...> [<pointer>:<v,v,...>...]",
		Short: "List the children of a path",
		Long: `List the children of a path in enumeration order.

The arguments form the path from first to last. Children extend the path by
one legal move from its last state, skipping moves that lead back to a state
already on the path.`,
		Example: `  pants children 2:1,2,3,4,5
  pants children 0:1,2,3 2:1,2,3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzle.ParsePath(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			n := 0
			for m, child := range p.Successors() {
				printKeyValue(w, m.String(), renderState(child.Last()))
				n++
			}
			if n == 0 {
				printWarning(w, "no children: every legal move revisits the path")
			}
			return nil
		},
	}
}

func moveNames() string {
	names := make([]string, 0, 4)
	for _, m := range pants.Moves() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
