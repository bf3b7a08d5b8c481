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

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new client audit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		client, _ := cmd.Flags().GetString("client")
		title, _ := cmd.Flags().GetString("title")
		industry, _ := cmd.Flags().GetString("industry")
		contactName, _ := cmd.Flags().GetString("contact-name")
		contactEmail, _ := cmd.Flags().GetString("contact-email")
		scopeFlag, _ := cmd.Flags().GetString("scope")
		nda, _ := cmd.Flags().GetString("nda")

		scope, err := parseScope(scopeFlag)
		if err != nil {
			return err
		}

		a, err := model.NewAudit(client, title, scope)
		if err != nil {
			return err
		}
		a.Industry = industry
		a.ContactName = contactName
		a.ContactEmail = contactEmail

		if nda != "" {
			status := model.NDAStatus(strings.ToUpper(nda))
			if !status.Valid() {
				return eris.Errorf("invalid nda status: %s", nda)
			}
			a.NDA = status
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		if err := st.SaveAudit(ctx, a); err != nil {
			return err
		}

		zap.L().Info("audit created",
			zap.String("audit_id", a.ID),
			zap.String("client", a.Client))
		fmt.Fprintln(os.Stdout, a.ID)
		return nil
	},
}

// parseScope turns "OPS,CX" or "all" into a scope map.
func parseScope(s string) (map[model.FunctionName]bool, error) {
	scope := make(map[model.FunctionName]bool)
	if strings.EqualFold(s, "all") {
		for _, fn := range model.FunctionOrder {
			scope[fn] = true
		}
		return scope, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fn := model.FunctionName(strings.ToUpper(part))
		if !fn.Valid() {
			return nil, eris.Errorf("unknown function: %s", part)
		}
		scope[fn] = true
	}
	return scope, nil
}

func init() {
	createCmd.Flags().String("client", "", "client name (required)")
	createCmd.Flags().String("title", "", "audit title (defaults to CoreIQ Audit — <client>)")
	createCmd.Flags().String("industry", "", "client industry")
	createCmd.Flags().String("contact-name", "", "primary contact name")
	createCmd.Flags().String("contact-email", "", "primary contact email")
	createCmd.Flags().String("scope", "all", "comma-separated functions in scope, or 'all'")
	createCmd.Flags().String("nda", "", "initial NDA status (NOT_SENT, SENT, SIGNED)")
	_ = createCmd.MarkFlagRequired("client")
	rootCmd.AddCommand(createCmd)
}
