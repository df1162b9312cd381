package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the server connection and session",
	Long: `Connect to the configured Ampache server, perform the handshake and
send a keepalive ping. Prints the session fields the server reports
(session expiry, API version).`,
	RunE: runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	browser, cleanup, err := openBrowser(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	fields, err := browser.Ping(context.Background())
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, fields[k])
	}
	return nil
}
