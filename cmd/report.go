package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/curiata/coreiq/internal/model"
	"github.com/curiata/coreiq/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <audit-id>",
	Short: "Compile the client report",
	Long:  "Compiles the full report artifact as JSON. Requires a SIGNED NDA.",
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
			return eris.Wrap(err, "report")
		}
		if a.NDA != model.NDASigned {
			return eris.Errorf("report compilation requires a signed NDA; current status is %s", a.NDA)
		}

		rep := report.Compile(a, time.Now())

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return eris.Wrapf(err, "create %s", path)
			}
			defer f.Close() //nolint:errcheck
			out = f
			zap.L().Info("report written",
				zap.String("audit_id", a.ID),
				zap.String("path", path))
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	},
}

func init() {
	reportCmd.Flags().StringP("out", "o", "", "write report JSON to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
