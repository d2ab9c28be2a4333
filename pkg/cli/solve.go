package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mazeworks/pkg/game/devtools"
	"mazeworks/pkg/game/solver"
)

func (a *app) newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve MAP_FILE",
		Short: "Solve a maze read from a map file",
		Long: `Reads a map in the format printed by "generate" (exactly one S and one E;
trailing "key: value" lines are ignored),
searches it and prints the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			grid, err := devtools.ParseMap(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			pf := solver.New()
			res := pf.Solve(grid)
			a.entry.WithFields(logrus.Fields{
				"map":      args[0],
				"solver":   pf.Name(),
				"found":    res.Found,
				"explored": res.Explored,
			}).Info("map solved")

			out := cmd.OutOrStdout()
			if err := devtools.WriteMap(out, grid); err != nil {
				return err
			}
			if res.Found {
				fmt.Fprintf(out, "path_length: %d\n", res.Length()-1)
			} else {
				fmt.Fprintln(out, "path_length: none")
			}
			return nil
		},
	}
}
