package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/cost"
)

func newHeuristicsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "heuristics",
		Short: "List heuristics and whether each is admissible per step cost",
		Long: `Heuristics lists every heuristic against the euclidean, manhattan and
static step costs (static uses --step-constant). An admissible pairing never
overestimates, so the path found is optimal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			static, err := cost.Static(a.cfg.StepConstant)
			if err != nil {
				return err
			}
			steps := []cost.StepCost{cost.EuclideanStep(), cost.ManhattanStep(), static}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			header := []string{"HEURISTIC"}
			for _, s := range steps {
				header = append(header, strings.ToUpper(s.String()))
			}
			fmt.Fprintln(w, strings.Join(header, "\t"))
			for _, h := range cost.Heuristics() {
				row := []string{h.String()}
				for _, s := range steps {
					if cost.Admissible(h, s) {
						row = append(row, "yes")
					} else {
						row = append(row, "no")
					}
				}
				fmt.Fprintln(w, strings.Join(row, "\t"))
			}
			return w.Flush()
		},
	}
}
