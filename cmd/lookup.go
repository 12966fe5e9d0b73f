package cmd

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alt-project/phonectl/internal/adapter/gateway"
	"github.com/alt-project/phonectl/internal/domain"
	"github.com/alt-project/phonectl/internal/infrastructure/cache"
	"github.com/alt-project/phonectl/internal/output"
	"github.com/alt-project/phonectl/internal/usecase"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <phone>",
	Short: "Look up a user account by phone number",
	Long: `Look up a single user account by E.164 phone number and print the
shaped record.

Examples:
  phonectl lookup +14155552671
  phonectl lookup "+1 (415) 555-2671"
  phonectl lookup +14155552671 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

// newLookupUsecase wires the gateway, cache, and usecase from config.
func newLookupUsecase() *usecase.LookupUser {
	gw := gateway.NewKratosGateway(cfg.KratosAdminURL, cfg.KratosAdminToken, cfg.LookupTimeout)
	recordCache := cache.NewRecordCache(cfg.CacheTTL)
	return usecase.NewLookupUser(gw, recordCache, logger)
}

func runLookup(cmd *cobra.Command, args []string) error {
	uc := newLookupUsecase()

	record, err := uc.Execute(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if viper.GetBool("json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	printRecord(cmd, record)
	return nil
}

// printRecord renders a single user record as a field/value table.
func printRecord(cmd *cobra.Command, record *domain.UserRecord) {
	table := output.NewTable(cmd.OutOrStdout(), []string{"FIELD", "VALUE"})

	table.AddRow([]string{"User ID", record.UserID})
	table.AddRow([]string{"Phone", record.PhoneNumber})
	table.AddRow([]string{"Phone verified", boolString(record.PhoneVerified)})
	if record.Email != "" {
		table.AddRow([]string{"Email", record.Email})
		table.AddRow([]string{"Email verified", boolString(record.EmailVerified)})
	}
	if record.Name != "" {
		table.AddRow([]string{"Name", record.Name})
	}
	if record.SchemaID != "" {
		table.AddRow([]string{"Schema", record.SchemaID})
	}
	if len(record.ProviderLinks) > 0 {
		links := make([]string, len(record.ProviderLinks))
		for i, link := range record.ProviderLinks {
			links[i] = link.Provider + ":" + link.Subject
		}
		table.AddRow([]string{"Providers", strings.Join(links, ", ")})
	}
	if !record.CreatedAt.IsZero() {
		table.AddRow([]string{"Created", record.CreatedAt.Format(time.RFC3339)})
	}
	if !record.UpdatedAt.IsZero() {
		table.AddRow([]string{"Updated", record.UpdatedAt.Format(time.RFC3339)})
	}

	table.Render()
}

func boolString(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
