package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ampview/pkg/ampache"
)

// localplayCmd represents the localplay command
var localplayCmd = &cobra.Command{
	Use:       "localplay <next|prev|stop|play>",
	Short:     "Control the server's localplay playback",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"next", "prev", "stop", "play"},
	RunE:      runLocalplay,
}

func init() {
	rootCmd.AddCommand(localplayCmd)
}

func runLocalplay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	browser, cleanup, err := openBrowser(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := browser.Localplay(ctx, ampache.LocalplayCommand(args[0])); err != nil {
		return fmt.Errorf("localplay failed: %w", err)
	}

	fmt.Printf("localplay: %s\n", args[0])
	return nil
}
