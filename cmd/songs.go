package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ampview/internal/render"
)

// songsCmd represents the songs command
var songsCmd = &cobra.Command{
	Use:   "songs <artist-id>",
	Short: "List an artist's songs",
	Long: `List every song of the artist with the given id, with album, track
number and duration.`,
	Args: cobra.ExactArgs(1),
	RunE: runSongs,
}

func init() {
	rootCmd.AddCommand(songsCmd)
}

func runSongs(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	browser, cleanup, err := openBrowser(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	songs, err := browser.SongsByArtist(ctx, args[0])
	if err != nil {
		return fmt.Errorf("song listing failed: %w", err)
	}

	if len(songs) == 0 {
		fmt.Println("No songs found.")
		return nil
	}

	table := render.NewTable("ID", "Title", "Album", "Track", "Length")
	for _, s := range songs {
		table.AddRow(s.ID, str(s.Title), str(s.Album), num(s.Track), duration(s.Seconds))
	}
	fmt.Print(table.String())
	return nil
}
