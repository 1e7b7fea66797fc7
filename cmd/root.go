package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"soloapp/config"
	"soloapp/soloapi"
)

var (
	flagBaseURL string
	flagToken   string
)

var rootCmd = &cobra.Command{
	Use:   "soloapp",
	Short: "SoloApp booking client",
	Long: `Client for the SoloApp local-services booking platform.
Search professionals, inspect their availability, and book or cancel
appointments against the remote API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "auth token (overrides config)")

	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newHoursCommand())
	rootCmd.AddCommand(newSlotsCommand())
	rootCmd.AddCommand(newBookCommand())
	rootCmd.AddCommand(newCancelCommand())
	rootCmd.AddCommand(newUpcomingCommand())
}

// apiClient builds a platform client from config plus flag overrides.
func apiClient() *soloapi.Client {
	baseURL := config.AppConfig.APIBaseURL
	if flagBaseURL != "" {
		baseURL = flagBaseURL
	}
	token := config.AppConfig.APIToken
	if flagToken != "" {
		token = flagToken
	}
	return soloapi.New(baseURL,
		soloapi.WithToken(token),
		soloapi.WithTimeout(config.RequestTimeout()),
		soloapi.WithMaxRetries(config.AppConfig.MaxRetries),
		soloapi.WithRateLimit(config.AppConfig.RequestsPerSec),
	)
}
