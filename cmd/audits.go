package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/curiata/coreiq/internal/model"
	"github.com/curiata/coreiq/internal/scoring"
	"github.com/curiata/coreiq/internal/store"
)

var auditsCmd = &cobra.Command{
	Use:   "audits",
	Short: "Inspect and manage audits",
	Long:  "Commands for listing, viewing, archiving, and updating audit engagements.",
}

// -- audits list --

var auditsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audits",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		client, _ := cmd.Flags().GetString("client")
		archived, _ := cmd.Flags().GetBool("archived")
		limit, _ := cmd.Flags().GetInt("limit")

		audits, err := st.ListAudits(ctx, store.AuditFilter{
			Client:          client,
			IncludeArchived: archived,
			Limit:           limit,
		})
		if err != nil {
			return eris.Wrap(err, "audits list")
		}

		if len(audits) == 0 {
			fmt.Fprintln(os.Stderr, "No audits found.")
			return nil
		}

		formatAuditsList(os.Stdout, audits)
		return nil
	},
}

// -- audits show --

var auditsShowCmd = &cobra.Command{
	Use:   "show <audit-id>",
	Short: "Show full details of an audit",
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
			return eris.Wrap(err, "audits show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	},
}

// -- audits archive --

var auditsArchiveCmd = &cobra.Command{
	Use:   "archive <audit-id>",
	Short: "Archive an audit (soft delete)",
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
			return eris.Wrap(err, "audits archive")
		}

		restore, _ := cmd.Flags().GetBool("restore")
		a.Archived = !restore
		if err := st.SaveAudit(ctx, a); err != nil {
			return eris.Wrap(err, "audits archive")
		}

		if restore {
			fmt.Fprintf(os.Stdout, "Audit %s restored.\n", a.ID)
		} else {
			fmt.Fprintf(os.Stdout, "Audit %s archived.\n", a.ID)
		}
		return nil
	},
}

// -- audits set-nda --

var auditsSetNDACmd = &cobra.Command{
	Use:   "set-nda <audit-id> <status>",
	Short: "Update the NDA status of an audit",
	Long:  "Sets the NDA workflow state. Answer entry and report compilation require SIGNED.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		status := model.NDAStatus(strings.ToUpper(args[1]))
		if !status.Valid() {
			return eris.Errorf("invalid nda status: %s", args[1])
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
			return eris.Wrap(err, "audits set-nda")
		}

		a.NDA = status
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			a.NDAFileName = file
		}
		if err := st.SaveAudit(ctx, a); err != nil {
			return eris.Wrap(err, "audits set-nda")
		}

		fmt.Fprintf(os.Stdout, "Audit %s NDA set to %s.\n", a.ID, status)
		return nil
	},
}

func init() {
	auditsListCmd.Flags().String("client", "", "filter by client name")
	auditsListCmd.Flags().Bool("archived", false, "include archived audits")
	auditsListCmd.Flags().Int("limit", 50, "max number of audits to display")

	auditsArchiveCmd.Flags().Bool("restore", false, "clear the archived flag instead of setting it")
	auditsSetNDACmd.Flags().String("file", "", "NDA document file name for the record")

	auditsCmd.AddCommand(auditsListCmd)
	auditsCmd.AddCommand(auditsShowCmd)
	auditsCmd.AddCommand(auditsArchiveCmd)
	auditsCmd.AddCommand(auditsSetNDACmd)
	rootCmd.AddCommand(auditsCmd)
}

// formatAuditsList writes a tabular list of audits to w.
func formatAuditsList(out io.Writer, audits []model.Audit) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCLIENT\tSTATUS\tNDA\tBAND\tOVERALL\tUPDATED")
	_, _ = fmt.Fprintln(w, "--\t------\t------\t---\t----\t-------\t-------")

	for i := range audits {
		a := &audits[i]
		res := scoring.Compute(a)

		client := a.Client
		if len(client) > 30 {
			client = client[:27] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f\t%s\n",
			truncateID(a.ID),
			client,
			a.Status,
			a.NDA,
			scoring.BandFor(res.Overall),
			res.Overall,
			a.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
