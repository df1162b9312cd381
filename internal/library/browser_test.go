package library

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ampview/pkg/ampache"
)

// fakeServer stands in for an Ampache server: handshake always
// succeeds, artist listings are served from a canned fixture, and every
// non-handshake request is counted.
func fakeServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("action") {
		case "handshake":
			fmt.Fprint(w, `<root><auth>tok</auth></root>`)
		case "artists":
			requests++
			fmt.Fprint(w, `<root><artist id="1"><name>Bach</name><albums>12</albums></artist></root>`)
		default:
			t.Errorf("unexpected action %q", q.Get("action"))
		}
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func connectedBrowser(t *testing.T, server *httptest.Server, cache *Cache) *Browser {
	t.Helper()

	client, err := ampache.Connect(context.Background(), ampache.Config{
		ServerURL: server.URL,
		Username:  "alice",
		Password:  "hunter2",
	})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	return NewBrowser(client, cache, time.Hour, zerolog.Nop())
}

func TestBrowserCachesArtistListings(t *testing.T) {
	server, requests := fakeServer(t)
	browser := connectedBrowser(t, server, createTestCache(t))
	ctx := context.Background()

	first, err := browser.Artists(ctx, "Bach", false)
	if err != nil {
		t.Fatalf("Artists() error: %v", err)
	}
	if len(first) != 1 || first[0].ID != "1" {
		t.Fatalf("artists = %v, want single artist 1", first)
	}
	if *requests != 1 {
		t.Fatalf("server saw %d listing requests, want 1", *requests)
	}

	// Second identical query is served from the cache.
	second, err := browser.Artists(ctx, "Bach", false)
	if err != nil {
		t.Fatalf("Artists() error: %v", err)
	}
	if *requests != 1 {
		t.Errorf("server saw %d listing requests after cached call, want 1", *requests)
	}
	if len(second) != 1 || second[0].Name == nil || *second[0].Name != "Bach" {
		t.Errorf("cached artists = %v, want Bach", second)
	}
	if second[0].AlbumCount == nil || *second[0].AlbumCount != 12 {
		t.Errorf("cached album count = %v, want 12 (absent fields must survive the cache)", second[0].AlbumCount)
	}

	// A different filter is its own cache entry.
	if _, err := browser.Artists(ctx, "Mozart", false); err != nil {
		t.Fatalf("Artists() error: %v", err)
	}
	if *requests != 2 {
		t.Errorf("server saw %d listing requests for a new filter, want 2", *requests)
	}

	// Same filter with exact on is also its own entry.
	if _, err := browser.Artists(ctx, "Bach", true); err != nil {
		t.Fatalf("Artists() error: %v", err)
	}
	if *requests != 3 {
		t.Errorf("server saw %d listing requests for exact match, want 3", *requests)
	}
}

func TestBrowserWithoutCache(t *testing.T) {
	server, requests := fakeServer(t)
	browser := connectedBrowser(t, server, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := browser.Artists(ctx, "Bach", false); err != nil {
			t.Fatalf("Artists() error: %v", err)
		}
	}
	if *requests != 2 {
		t.Errorf("server saw %d listing requests with caching disabled, want 2", *requests)
	}
}
