package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/curiata/coreiq/internal/model"
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Manage evidence attachments",
}

// -- attach add --

var attachAddCmd = &cobra.Command{
	Use:   "add <audit-id> <file>",
	Short: "Attach an evidence file to a function",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		fnFlag, _ := cmd.Flags().GetString("fn")
		fn := model.FunctionName(strings.ToUpper(fnFlag))
		if !fn.Valid() {
			return eris.Errorf("unknown function: %s", fnFlag)
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
			return eris.Wrap(err, "attach add")
		}
		if a.NDA != model.NDASigned {
			return eris.Errorf("evidence requires a signed NDA; current status is %s", a.NDA)
		}

		ev, err := initEvidence()
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return eris.Wrapf(err, "open %s", args[1])
		}
		defer f.Close() //nolint:errcheck

		att, err := ev.Put(a.ID, fn, args[1], f)
		if err != nil {
			return err
		}

		if err := a.AddAttachment(fn, *att); err != nil {
			return err
		}
		if err := st.SaveAudit(ctx, a); err != nil {
			return eris.Wrap(err, "attach add")
		}

		fmt.Fprintln(os.Stdout, att.ID)
		return nil
	},
}

// -- attach rm --

var attachRmCmd = &cobra.Command{
	Use:   "rm <audit-id> <attachment-id>",
	Short: "Remove an attachment",
	Args:  cobra.ExactArgs(2),
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
			return eris.Wrap(err, "attach rm")
		}

		att, ok := a.RemoveAttachment(args[1])
		if !ok {
			return eris.Errorf("attachment not found: %s", args[1])
		}
		if err := st.SaveAudit(ctx, a); err != nil {
			return eris.Wrap(err, "attach rm")
		}

		if att.StoragePath != "" {
			ev, err := initEvidence()
			if err != nil {
				return err
			}
			if err := ev.Remove(att.StoragePath); err != nil {
				return err
			}
		}

		fmt.Fprintf(os.Stdout, "Attachment %s removed.\n", att.ID)
		return nil
	},
}

// -- attach list --

var attachListCmd = &cobra.Command{
	Use:   "list <audit-id>",
	Short: "List attachments on an audit",
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
			return eris.Wrap(err, "attach list")
		}

		formatAttachments(os.Stdout, a)
		return nil
	},
}

func formatAttachments(out io.Writer, a *model.Audit) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tFUNCTION\tNAME\tSIZE\tADDED")
	for _, fn := range model.FunctionOrder {
		for _, att := range a.Attachments[fn] {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				truncateID(att.ID),
				fn,
				att.Name,
				formatBytes(att.Size),
				att.AddedAt.Format("2006-01-02 15:04"),
			)
		}
	}
	_ = w.Flush()
}

func formatBytes(n int64) string {
	mb := float64(n) / (1 << 20)
	if mb >= 1 {
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.0f KB", float64(n)/(1<<10))
}

func init() {
	attachAddCmd.Flags().String("fn", "", "function to attach evidence under (required)")
	_ = attachAddCmd.MarkFlagRequired("fn")

	attachCmd.AddCommand(attachAddCmd)
	attachCmd.AddCommand(attachRmCmd)
	attachCmd.AddCommand(attachListCmd)
	rootCmd.AddCommand(attachCmd)
}
