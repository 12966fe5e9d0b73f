// Package cmd contains all CLI commands for phonectl
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alt-project/phonectl/config"
	"github.com/alt-project/phonectl/internal/output"
)

var (
	envFile    string
	verbose    bool
	noColor    bool
	jsonOutput bool
	cfg        *config.Config
	logger     *slog.Logger
	version    = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phonectl",
	Short: "Phone-number identity lookup CLI",
	Long: `phonectl looks up user accounts in the identity provider by phone number
through the Kratos Admin API.

Phone numbers must be given in E.164 format (leading + and country code);
common separators are stripped before validation.

Example usage:
  phonectl lookup +14155552671            # Look up a single user
  phonectl batch +14155552671 +4915123456789
  phonectl batch --file numbers.txt       # One number per line
  phonectl serve                          # Run the HTTP lookup service
  phonectl token --subject ops            # Mint a service token`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context so long
// lookups and the serve loop stop on SIGINT/SIGTERM.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load before reading configuration (default: .env if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig loads env files, sets up the logger, and reads configuration.
func initConfig() error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	logLevel := slog.LevelInfo
	if viper.GetBool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger.Debug("configuration loaded",
		"kratos_admin_url", cfg.KratosAdminURL,
		"cache_ttl", cfg.CacheTTL,
		"lookup_timeout", cfg.LookupTimeout,
	)

	return nil
}

// newPrinter builds a printer honoring the color flags for the command's
// output streams.
func newPrinter(cmd *cobra.Command) *output.Printer {
	useColors := output.ResolveColors(viper.GetBool("no_color"))
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColors)
}
