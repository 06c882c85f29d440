package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/render"
)

func newMazeCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a maze and print it",
		Long: `Maze carves a maze from --width, --height, --seed and --braiding and
prints it with start and target markers. --format yaml emits a grid literal
that "solve" reads back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.generate()
			if err != nil {
				return err
			}
			g, err := m.Marked()
			if err != nil {
				return err
			}
			switch format {
			case "yaml":
				return g.Encode(cmd.OutOrStdout())
			case "text":
				f := render.FrameFromGrid(g)
				f.Start, f.Target = m.Start, m.Target
				return render.NewText(cmd.OutOrStdout()).Render(f)
			default:
				return fmt.Errorf("maze: unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text|yaml)")
	return cmd
}
