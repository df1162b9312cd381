package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ampview/pkg/ampache"
)

// democraticCmd represents the democratic command
var democraticCmd = &cobra.Command{
	Use:   "democratic <vote|devote|playlist|play> [object-id]",
	Short: "Drive the server's democratic play queue",
	Long: `Interact with democratic play: vote or devote a song by its object
id, or switch the queue with playlist/play.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDemocratic,
}

func init() {
	rootCmd.AddCommand(democraticCmd)
}

func runDemocratic(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	oid := ""
	if len(args) == 2 {
		oid = args[1]
	}

	browser, cleanup, err := openBrowser(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	method := ampache.DemocraticMethod(args[0])
	if err := browser.Democratic(ctx, method, oid); err != nil {
		return fmt.Errorf("democratic %s failed: %w", args[0], err)
	}

	fmt.Printf("democratic: %s\n", args[0])
	return nil
}
