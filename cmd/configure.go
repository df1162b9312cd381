package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ampview/internal/config"
)

var (
	configureServer   string
	configureUsername string
	configurePassword string
)

// configureCmd represents the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Write server address and credentials to the config file",
	Long: `Write the server address and credentials to the config file so later
invocations don't need AMPVIEW_* environment variables.

Existing settings are kept unless overridden by a flag.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().StringVar(&configureServer, "server", "", "Ampache server base URL")
	configureCmd.Flags().StringVar(&configureUsername, "username", "", "Ampache username")
	configureCmd.Flags().StringVar(&configurePassword, "password", "", "Ampache password")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if configureServer != "" {
		cfg.Server = configureServer
	}
	if configureUsername != "" {
		cfg.Username = configureUsername
	}
	if configurePassword != "" {
		cfg.Password = configurePassword
	}

	if cfg.Server == "" || cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("server, username and password are all required")
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Configuration saved to %s/config.yaml\n", config.GetConfigDir())
	return nil
}
