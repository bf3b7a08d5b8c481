package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/export"
	"github.com/curiata/coreiq/internal/model"
)

var exportCmd = &cobra.Command{
	Use:   "export <audit-id>",
	Short: "Export the full catalogue with answers",
	Long:  "Writes the complete question catalogue joined with the audit's answers as CSV, JSONL or XLSX.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, _ := cmd.Flags().GetString("format")
		dir, _ := cmd.Flags().GetString("out")
		if dir == "" {
			dir = cfg.Export.Dir
		}

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
			return eris.Wrap(err, "export")
		}

		cat, err := initCatalogue()
		if err != nil {
			return err
		}

		now := time.Now()
		switch format {
		case "csv":
			return writeCSVExport(cat, a, filepath.Join(dir, "coreiq_full_export.csv"))
		case "jsonl":
			return writeJSONLExport(cat, a, filepath.Join(dir, "coreiq_full_export.jsonl"), now)
		case "xlsx":
			return export.WriteXLSX(cat, a, filepath.Join(dir, "coreiq_full_export.xlsx"))
		case "all":
			g, _ := errgroup.WithContext(ctx)
			g.Go(func() error {
				return writeCSVExport(cat, a, filepath.Join(dir, "coreiq_full_export.csv"))
			})
			g.Go(func() error {
				return writeJSONLExport(cat, a, filepath.Join(dir, "coreiq_full_export.jsonl"), now)
			})
			g.Go(func() error {
				return export.WriteXLSX(cat, a, filepath.Join(dir, "coreiq_full_export.xlsx"))
			})
			if err := g.Wait(); err != nil {
				return err
			}
			zap.L().Info("exports written",
				zap.String("audit_id", a.ID),
				zap.String("dir", dir))
			return nil
		default:
			return eris.Errorf("unsupported format: %s (csv, jsonl, xlsx, all)", format)
		}
	},
}

func writeCSVExport(cat *catalogue.Catalogue, a *model.Audit, path string) error {
	if err := os.WriteFile(path, []byte(export.CSV(cat, a)), 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	fmt.Fprintln(os.Stdout, path)
	return nil
}

func writeJSONLExport(cat *catalogue.Catalogue, a *model.Audit, path string, now time.Time) error {
	jsonl, err := export.JSONL(cat, a, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(jsonl), 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	fmt.Fprintln(os.Stdout, path)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "csv", "export format: csv, jsonl, xlsx, all")
	exportCmd.Flags().String("out", "", "output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}
