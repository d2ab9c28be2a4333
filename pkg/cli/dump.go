package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mazeworks/pkg/game/devtools"
	"mazeworks/pkg/game/maze"
)

func (a *app) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Generate and solve a maze, then write a debug dump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := maze.New(a.cfg, maze.WithLogger(a.entry))
			if err != nil {
				return err
			}
			if err := m.Generate(a.cfg.Seed); err != nil {
				return err
			}
			if _, err := m.SolveResult(); err != nil {
				return err
			}

			path, err := devtools.DumpMapToFile(a.cfg.DumpDir, m)
			if err != nil {
				return err
			}
			a.entry.WithField("path", path).Info("map dumped")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
