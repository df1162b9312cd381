package ampache

import (
	"context"
	"time"
)

// ArtistService provides artist-scoped queries.
type ArtistService struct {
	client *Client
}

// ListOptions narrows an artist listing. The zero value applies no
// narrowing: Exact is off and the Add/Update windows are omitted from
// the request entirely.
type ListOptions struct {
	Exact  bool      // match the filter exactly instead of substring
	Add    time.Time // only artists added since this time
	Update time.Time // only artists updated since this time
}

// List returns the artists matching filter, in the order the server
// reported them. An empty result is not an error.
func (s *ArtistService) List(ctx context.Context, filter string, opts ListOptions) ([]Artist, error) {
	params := map[string]string{
		"filter": filter,
	}
	if opts.Exact {
		params["exact"] = "1"
	}
	if !opts.Add.IsZero() {
		params["add"] = opts.Add.Format(time.RFC3339)
	}
	if !opts.Update.IsZero() {
		params["update"] = opts.Update.Format(time.RFC3339)
	}

	doc, err := s.client.call(ctx, "artists", params)
	if err != nil {
		return nil, err
	}
	return decodeArtists(doc)
}

// Albums returns every album by the artist with the given id.
func (s *ArtistService) Albums(ctx context.Context, artistID string) ([]Album, error) {
	doc, err := s.client.call(ctx, "artist_albums", map[string]string{
		"filter": artistID,
	})
	if err != nil {
		return nil, err
	}
	return decodeAlbums(doc)
}

// Songs returns every song by the artist with the given id.
func (s *ArtistService) Songs(ctx context.Context, artistID string) ([]Song, error) {
	doc, err := s.client.call(ctx, "artist_songs", map[string]string{
		"filter": artistID,
	})
	if err != nil {
		return nil, err
	}
	return decodeSongs(doc)
}
