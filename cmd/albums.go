package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ampview/internal/render"
)

// albumsCmd represents the albums command
var albumsCmd = &cobra.Command{
	Use:   "albums <artist-id>",
	Short: "List an artist's albums",
	Long: `List every album of the artist with the given id.

Artist ids come from the output of 'ampview artists'.`,
	Args: cobra.ExactArgs(1),
	RunE: runAlbums,
}

func init() {
	rootCmd.AddCommand(albumsCmd)
}

func runAlbums(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	browser, cleanup, err := openBrowser(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	albums, err := browser.AlbumsByArtist(ctx, args[0])
	if err != nil {
		return fmt.Errorf("album listing failed: %w", err)
	}

	if len(albums) == 0 {
		fmt.Println("No albums found.")
		return nil
	}

	table := render.NewTable("ID", "Name", "Artist", "Tracks", "Disk")
	for _, a := range albums {
		table.AddRow(a.ID, str(a.Name), str(a.Artist), num(a.TrackCount), num(a.Disk))
	}
	fmt.Print(table.String())
	return nil
}
