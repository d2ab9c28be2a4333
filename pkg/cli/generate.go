package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mazeworks/pkg/game/devtools"
	"mazeworks/pkg/game/maze"
)

type generateOptions struct {
	solve      bool
	trace      string
	screenshot bool
}

func (a *app) newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print it without animation",
		Long: `Generates a maze and prints it with one symbol per cell:
# wall, P passage, S start, E end, V visited, F frontier, . solution path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.solve, "solve", false, "also search for the shortest path")
	cmd.Flags().StringVar(&opts.trace, "trace", "", "write every cell event to this YAML file")
	cmd.Flags().BoolVar(&opts.screenshot, "screenshot", false, "save an HTML screenshot in the dump directory")
	return cmd
}

func (a *app) runGenerate(out io.Writer, opts generateOptions) error {
	m, err := maze.New(a.cfg, maze.WithLogger(a.entry))
	if err != nil {
		return err
	}

	var tracer *devtools.Tracer
	if opts.trace != "" {
		tracer = devtools.NewTracer(a.runID, a.cfg.Seed, m.Grid())
		m.Subscribe(tracer)
	}

	if err := m.Generate(a.cfg.Seed); err != nil {
		return err
	}
	found := false
	if opts.solve {
		res, err := m.SolveResult()
		if err != nil {
			return err
		}
		found = res.Found
	}

	if err := devtools.WriteMap(out, m.Grid()); err != nil {
		return err
	}
	fmt.Fprintf(out, "seed: %d\n", m.Seed())
	if opts.solve {
		if found {
			fmt.Fprintf(out, "path_length: %d\n", len(m.Path())-1)
		} else {
			fmt.Fprintln(out, "path_length: none")
		}
	}

	if tracer != nil {
		tracer.Trace.Seed = m.Seed()
		if err := writeTraceFile(opts.trace, tracer.Trace); err != nil {
			return err
		}
		a.entry.WithField("path", opts.trace).Info("trace written")
	}
	if opts.screenshot {
		path, err := devtools.SaveScreenshotHTML(a.cfg.DumpDir, m, time.Now())
		if err != nil {
			return err
		}
		a.entry.WithField("path", path).Info("screenshot saved")
	}
	return nil
}

func writeTraceFile(path string, t *devtools.Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer f.Close()
	if err := devtools.WriteTrace(f, t); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return f.Sync()
}
