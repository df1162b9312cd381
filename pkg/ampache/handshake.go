package ampache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// protocolVersion is the API version marker sent with every handshake.
const protocolVersion = 350001

// authToken derives the time-scoped handshake token from the shared
// secret and a nonce (the current Unix time as a string):
//
//	hex(sha256(nonce + hex(sha256(secret))))
//
// Both digests render as lowercase hex, so the token is a fixed
// 64-character string for a given nonce and secret.
func authToken(secret, nonce string) string {
	inner := sha256.Sum256([]byte(secret))
	outer := sha256.Sum256([]byte(nonce + hex.EncodeToString(inner[:])))
	return hex.EncodeToString(outer[:])
}

// Handshake authenticates with the server and stores the returned
// session token on the client. It returns the full field mapping of the
// handshake reply (auth, session_expire, catalog counts, ...) so
// callers can inspect what the server reported.
//
// Connect calls this once during construction. The token is never
// refreshed automatically: when it expires, requests fail with *Error
// and re-handshaking is the caller's decision. Handshake must not be
// called concurrently with in-flight requests.
//
// Fails with *Error if the server rejects the challenge and with
// *MissingFieldError if the reply carries no auth token.
func (c *Client) Handshake(ctx context.Context) (Fields, error) {
	nonce := strconv.FormatInt(time.Now().Unix(), 10)

	doc, err := c.call(ctx, "handshake", map[string]string{
		"auth":      authToken(c.password, nonce),
		"timestamp": nonce,
		"version":   strconv.Itoa(protocolVersion),
		"user":      c.username,
	})
	if err != nil {
		return nil, err
	}

	root := rootElement(doc)
	if root == nil {
		return nil, &MalformedResponseError{Reason: "handshake response has no root element"}
	}

	fields := dictify(root)
	auth, ok := fields["auth"]
	if !ok {
		return nil, &MissingFieldError{Field: "auth"}
	}

	c.authToken = auth
	return fields, nil
}
