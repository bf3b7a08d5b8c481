package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/curiata/coreiq/internal/model"
	"github.com/curiata/coreiq/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <audit-id>",
	Short: "Show scores for an audit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		a, err := st.GetAudit(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "score")
		}

		formatScores(os.Stdout, a)
		return nil
	},
}

func formatScores(out io.Writer, a *model.Audit) {
	res := scoring.Compute(a)
	comp := scoring.ComponentScores(a)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FUNCTION\tFUNCTIONALITY\tFRICTION\tDATA_FITNESS\tCHANGE_READINESS\tSCORE")
	for _, fn := range a.ActiveFunctions() {
		m := comp[fn.Name]
		_, _ = fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			fn.Name,
			m[model.ComponentFunctionality],
			m[model.ComponentFriction],
			m[model.ComponentDataFitness],
			m[model.ComponentChangeReadiness],
			res.PerFunction[fn.Name],
		)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "Component means:")
	for i, cn := range model.ComponentOrder {
		_, _ = fmt.Fprintf(out, " %s=%.1f", cn, res.PerComponent[i])
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "Overall: %.1f (%s)\n", res.Overall, scoring.BandFor(res.Overall))
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
