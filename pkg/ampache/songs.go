package ampache

import (
	"context"
	"fmt"
)

// SongService provides song-scoped queries.
type SongService struct {
	client *Client
}

// FromURL resolves a server streaming URL back to the song it serves.
// The server reports exactly one song for a valid URL; any other count
// is a malformed response.
func (s *SongService) FromURL(ctx context.Context, songURL string) (*Song, error) {
	doc, err := s.client.call(ctx, "url_to_song", map[string]string{
		"url": songURL,
	})
	if err != nil {
		return nil, err
	}

	songs, err := decodeSongs(doc)
	if err != nil {
		return nil, err
	}
	if len(songs) != 1 {
		return nil, &MalformedResponseError{
			Reason: fmt.Sprintf("url_to_song returned %d songs, want 1", len(songs)),
		}
	}
	return &songs[0], nil
}
