package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ampview/internal/render"
)

var artistsExact bool

// artistsCmd represents the artists command
var artistsCmd = &cobra.Command{
	Use:   "artists <filter>",
	Short: "Search artists by name",
	Long: `Search the server's artists by name and print one line per match.

By default the filter matches substrings; pass --exact for an exact
name match. Results are cached locally; use --no-cache to force a
fresh query.`,
	Args: cobra.ExactArgs(1),
	RunE: runArtists,
}

func init() {
	rootCmd.AddCommand(artistsCmd)

	artistsCmd.Flags().BoolVar(&artistsExact, "exact", false, "Match the filter exactly instead of as a substring")
}

func runArtists(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	browser, cleanup, err := openBrowser(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	artists, err := browser.Artists(ctx, args[0], artistsExact)
	if err != nil {
		return fmt.Errorf("artist search failed: %w", err)
	}

	if len(artists) == 0 {
		fmt.Println("No artists found.")
		return nil
	}

	table := render.NewTable("ID", "Name", "Albums", "Songs", "Rating")
	for _, a := range artists {
		rating := "-"
		if a.Rating != nil {
			rating = fmt.Sprintf("%.1f", *a.Rating)
		}
		table.AddRow(a.ID, str(a.Name), num(a.AlbumCount), num(a.SongCount), rating)
	}
	fmt.Print(table.String())
	return nil
}
