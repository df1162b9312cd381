package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <url>",
	Short: "Resolve a streaming URL to its song",
	Long: `Ask the server which song a streaming URL serves and print its
metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	browser, cleanup, err := openBrowser(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	song, err := browser.Lookup(ctx, args[0])
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	fmt.Printf("id:      %s\n", song.ID)
	fmt.Printf("title:   %s\n", str(song.Title))
	fmt.Printf("artist:  %s\n", str(song.Artist))
	fmt.Printf("album:   %s\n", str(song.Album))
	fmt.Printf("genre:   %s\n", str(song.Genre))
	fmt.Printf("track:   %s\n", num(song.Track))
	fmt.Printf("length:  %s\n", duration(song.Seconds))
	fmt.Printf("mime:    %s\n", str(song.Mime))
	if song.SizeBytes != nil {
		fmt.Printf("size:    %d\n", *song.SizeBytes)
	} else {
		fmt.Printf("size:    -\n")
	}
	fmt.Printf("url:     %s\n", str(song.URL))

	if len(song.Tags) > 0 {
		fmt.Printf("tags:    ")
		for i, tag := range song.Tags {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(tag.Text)
		}
		fmt.Println()
	}
	return nil
}
