// Package library is the app-side wrapper around the ampache client:
// it adds logging and an optional result cache so repeated CLI
// invocations don't hammer the server.
package library

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"ampview/pkg/ampache"
)

// Browser answers the CLI's queries, consulting the cache before the
// network. A nil cache disables caching entirely.
type Browser struct {
	client *ampache.Client
	cache  *Cache
	ttl    time.Duration
	logger zerolog.Logger
}

// NewBrowser creates a Browser around a connected client.
func NewBrowser(client *ampache.Client, cache *Cache, ttl time.Duration, logger zerolog.Logger) *Browser {
	return &Browser{
		client: client,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With().Str("component", "library").Logger(),
	}
}

// Artists lists artists matching filter.
func (b *Browser) Artists(ctx context.Context, filter string, exact bool) ([]ampache.Artist, error) {
	key := cacheKey("artists", filter, strconv.FormatBool(exact))

	var artists []ampache.Artist
	if b.lookup(ctx, key, &artists) {
		return artists, nil
	}

	artists, err := b.client.Artists().List(ctx, filter, ampache.ListOptions{Exact: exact})
	if err != nil {
		return nil, err
	}
	b.store(ctx, key, artists)
	return artists, nil
}

// AlbumsByArtist lists the albums of one artist.
func (b *Browser) AlbumsByArtist(ctx context.Context, artistID string) ([]ampache.Album, error) {
	key := cacheKey("artist_albums", artistID)

	var albums []ampache.Album
	if b.lookup(ctx, key, &albums) {
		return albums, nil
	}

	albums, err := b.client.Artists().Albums(ctx, artistID)
	if err != nil {
		return nil, err
	}
	b.store(ctx, key, albums)
	return albums, nil
}

// SongsByArtist lists the songs of one artist.
func (b *Browser) SongsByArtist(ctx context.Context, artistID string) ([]ampache.Song, error) {
	key := cacheKey("artist_songs", artistID)

	var songs []ampache.Song
	if b.lookup(ctx, key, &songs) {
		return songs, nil
	}

	songs, err := b.client.Artists().Songs(ctx, artistID)
	if err != nil {
		return nil, err
	}
	b.store(ctx, key, songs)
	return songs, nil
}

// Lookup resolves a streaming URL to its song. Lookups are never
// cached: they are one-off by nature.
func (b *Browser) Lookup(ctx context.Context, songURL string) (*ampache.Song, error) {
	return b.client.Songs().FromURL(ctx, songURL)
}

// Ping keeps the session alive and reports the server's session fields.
func (b *Browser) Ping(ctx context.Context) (ampache.Fields, error) {
	return b.client.Ping(ctx)
}

// Localplay forwards a playback command to the server.
func (b *Browser) Localplay(ctx context.Context, cmd ampache.LocalplayCommand) error {
	return b.client.Control().Localplay(ctx, cmd)
}

// Democratic forwards a democratic play action to the server.
func (b *Browser) Democratic(ctx context.Context, method ampache.DemocraticMethod, oid string) error {
	return b.client.Control().Democratic(ctx, method, oid)
}

// lookup loads a cached result into out, reporting whether it hit.
// Cache failures degrade to a miss; they never fail the query.
func (b *Browser) lookup(ctx context.Context, key string, out interface{}) bool {
	if b.cache == nil {
		return false
	}
	hit, err := b.cache.Get(ctx, key, b.ttl, out)
	if err != nil {
		b.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		return false
	}
	if hit {
		b.logger.Debug().Str("key", key).Msg("Cache hit")
	}
	return hit
}

func (b *Browser) store(ctx context.Context, key string, value interface{}) {
	if b.cache == nil {
		return
	}
	if err := b.cache.Put(ctx, key, value); err != nil {
		b.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}
