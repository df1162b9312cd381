// Package ampache provides a client for the Ampache XML API.
//
// # Overview
//
// This package implements the Ampache server's XML remote procedure
// protocol: the time-based handshake that establishes a session token,
// the action request/response cycle, and the normalization of the
// server's loosely structured XML fragments into typed entities
// (Artist, Album, Song, Tag, Playlist, Video).
//
// # Quick Start
//
// Connect performs the handshake and returns a ready client:
//
//	client, err := ampache.Connect(ctx, ampache.Config{
//	    ServerURL: "https://music.example.com",
//	    Username:  "alice",
//	    Password:  "secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	artists, err := client.Artists().List(ctx, "Bach", ampache.ListOptions{})
//
// # Authentication
//
// Ampache authenticates with a challenge derived from the current Unix
// time and the SHA-256 digest of the password:
//
//	token = hex(sha256(timestamp + hex(sha256(password))))
//
// The handshake exchanges that token for a session token which is then
// sent with every subsequent request. The session token is established
// once; when it expires the server reports a protocol error and the
// caller decides whether to call Handshake again. The client never
// refreshes the token on its own.
//
// # Entities
//
// Every optional entity field is a pointer: nil means the server did
// not report the field, which is distinct from the server reporting an
// empty value. Entities are plain values and are never mutated after
// construction.
//
// # Error Handling
//
// Server-reported failures surface as *Error with the server's code
// and message:
//
//	songs, err := client.Artists().Songs(ctx, artistID)
//	if err != nil {
//	    var apiErr *ampache.Error
//	    if errors.As(err, &apiErr) && apiErr.Code == ampache.ErrCodeInvalidHandshake {
//	        // session expired, re-handshake and retry
//	    }
//	}
//
// Structural problems surface as *UnknownEntityError, *MissingFieldError
// or *MalformedResponseError. Transport failures are wrapped and
// propagated unchanged. Nothing is retried and nothing is swallowed.
//
// # Concurrency
//
// After Connect the session token is read-only, so a single client may
// be shared by concurrent callers as long as the configured HTTP client
// is safe for concurrent use (http.Client is). Handshake itself must
// not race with in-flight requests.
package ampache
