package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/curiata/coreiq/internal/model"
)

var answerCmd = &cobra.Command{
	Use:   "answer <audit-id>",
	Short: "Record a score and/or note for one sub-criterion",
	Long:  "Upserts an answer. Requires a SIGNED NDA; evidence gathering does not start before the client signs.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		fnFlag, _ := cmd.Flags().GetString("fn")
		compFlag, _ := cmd.Flags().GetString("component")
		key, _ := cmd.Flags().GetString("key")

		fn := model.FunctionName(strings.ToUpper(fnFlag))
		if !fn.Valid() {
			return eris.Errorf("unknown function: %s", fnFlag)
		}
		comp := model.ComponentName(strings.ToUpper(compFlag))
		if !comp.Valid() {
			return eris.Errorf("unknown component: %s", compFlag)
		}

		var score *int
		if cmd.Flags().Changed("score") {
			v, _ := cmd.Flags().GetInt("score")
			if v < 0 || v > 5 {
				return eris.Errorf("score must be between 0 and 5, got %d", v)
			}
			score = &v
		}
		var note *string
		if cmd.Flags().Changed("note") {
			v, _ := cmd.Flags().GetString("note")
			note = &v
		}
		if score == nil && note == nil {
			return eris.New("nothing to record: pass --score and/or --note")
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
			return eris.Wrap(err, "answer")
		}

		if a.NDA != model.NDASigned {
			return eris.Errorf("answers require a signed NDA; current status is %s", a.NDA)
		}
		if !a.Scope[fn] {
			return eris.Errorf("function %s is not in scope for this audit", fn)
		}

		if err := a.SetAnswer(fn, comp, key, score, note); err != nil {
			return err
		}
		if a.Status == model.StatusDraft {
			a.Status = model.StatusInProgress
		}

		if err := st.SaveAudit(ctx, a); err != nil {
			return eris.Wrap(err, "answer")
		}

		zap.L().Debug("answer recorded",
			zap.String("audit_id", a.ID),
			zap.String("fn", string(fn)),
			zap.String("component", string(comp)),
			zap.String("key", key))
		fmt.Fprintf(os.Stdout, "Recorded %s/%s/%s.\n", fn, comp, key)
		return nil
	},
}

func init() {
	answerCmd.Flags().String("fn", "", "function name (required)")
	answerCmd.Flags().String("component", "", "component name (required)")
	answerCmd.Flags().String("key", "", "sub-criterion key (required)")
	answerCmd.Flags().Int("score", 0, "score 0-5")
	answerCmd.Flags().String("note", "", "consultant note")
	_ = answerCmd.MarkFlagRequired("fn")
	_ = answerCmd.MarkFlagRequired("component")
	_ = answerCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(answerCmd)
}
