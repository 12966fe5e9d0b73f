package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	infratoken "github.com/alt-project/phonectl/internal/infrastructure/token"
	"github.com/alt-project/phonectl/internal/usecase"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a service token for the lookup service",
	Long: `Mint a signed service token for calling the HTTP lookup service.
Requires SERVICE_TOKEN_SECRET to be configured with the same value the
service uses.

Examples:
  phonectl token --subject ops-cli
  phonectl token --subject backfill-job --ttl 1h`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("subject", "phonectl", "subject claim for the token")
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (default: SERVICE_TOKEN_TTL)")
}

func runToken(cmd *cobra.Command, args []string) error {
	subject, _ := cmd.Flags().GetString("subject")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	if ttl <= 0 {
		ttl = cfg.ServiceTokenTTL
	}

	issuer := infratoken.NewServiceToken(infratoken.ServiceTokenConfig{
		Secret:   cfg.ServiceTokenSecret,
		Issuer:   cfg.ServiceTokenIssuer,
		Audience: cfg.ServiceTokenAudience,
	})

	uc := usecase.NewIssueServiceToken(issuer, logger)
	token, err := uc.Execute(cmd.Context(), subject, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)

	printer := newPrinter(cmd)
	printer.Warning("token expires in %s", ttl)
	return nil
}
