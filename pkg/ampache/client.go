package ampache

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Config holds client configuration.
type Config struct {
	ServerURL  string       // Required: base URL of the Ampache server
	Username   string       // Required: Ampache user
	Password   string       // Required: shared secret for the handshake
	HTTPClient *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// rpcPath is the fixed RPC endpoint path below the server base URL.
const rpcPath = "/server/xml.server.php"

// Client is the main entry point for Ampache API operations.
//
// The session token is written exactly once, by Handshake; every other
// method only reads it, so a connected client is safe for concurrent use.
type Client struct {
	endpoint   string
	username   string
	password   string
	authToken  string
	httpClient *http.Client
	logger     Logger

	artists *ArtistService
	songs   *SongService
	control *ControlService
}

// NewClient creates an Ampache client without contacting the server.
// Call Handshake before issuing authenticated requests, or use Connect
// which does both.
//
// Returns an error if required configuration (ServerURL, Username,
// Password) is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ampache: ServerURL is required")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("ampache: Username is required")
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("ampache: Password is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		endpoint:   strings.TrimRight(cfg.ServerURL, "/") + rpcPath,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}

	c.artists = &ArtistService{client: c}
	c.songs = &SongService{client: c}
	c.control = &ControlService{client: c}

	return c, nil
}

// Connect creates a client and performs the handshake, returning a
// client whose session token is established.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	c, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := c.Handshake(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Artists returns the artist query service.
func (c *Client) Artists() *ArtistService {
	return c.artists
}

// Songs returns the song query service.
func (c *Client) Songs() *SongService {
	return c.songs
}

// Control returns the playback control service.
func (c *Client) Control() *ControlService {
	return c.control
}

// AuthToken returns the current session token. Empty until a handshake
// has completed.
func (c *Client) AuthToken() string {
	return c.authToken
}

// Ping keeps the session alive and returns the field mapping of the
// response root element (session_expire and friends).
func (c *Client) Ping(ctx context.Context) (Fields, error) {
	doc, err := c.call(ctx, "ping", nil)
	if err != nil {
		return nil, err
	}
	root := rootElement(doc)
	if root == nil {
		return nil, &MalformedResponseError{Reason: "response has no root element"}
	}
	return dictify(root), nil
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
