package ampache

import (
	"strings"
)

// Fields is the flat field mapping extracted from one XML element:
// child tag name to character data, plus "<name>Id" entries for
// children carrying an id attribute.
type Fields map[string]string

// TagRef is one tag attached to an entity: the id of the owning entity
// and the tag's text. Tag lists keep document order and preserve
// duplicates.
type TagRef struct {
	OwnerID string
	Text    string
}

// Kind enumerates the entity kinds the server can return. The zero
// value is KindArtist; values outside the enumeration are rejected
// before any document is scanned.
type Kind int

const (
	KindArtist Kind = iota
	KindAlbum
	KindSong
	KindTag
	KindPlaylist
	KindVideo
)

// element returns the XML element name for the kind, or "" for values
// outside the enumeration.
func (k Kind) element() string {
	switch k {
	case KindArtist:
		return "artist"
	case KindAlbum:
		return "album"
	case KindSong:
		return "song"
	case KindTag:
		return "tag"
	case KindPlaylist:
		return "playlist"
	case KindVideo:
		return "video"
	default:
		return ""
	}
}

// String returns the kind's element name, or "unknown".
func (k Kind) String() string {
	if name := k.element(); name != "" {
		return name
	}
	return "unknown"
}

// ParseKind resolves an entity kind name ("artist", "song", ...) to its
// Kind value. Unrecognized names fail with *UnknownEntityError.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "artist":
		return KindArtist, nil
	case "album":
		return KindAlbum, nil
	case "song":
		return KindSong, nil
	case "tag":
		return KindTag, nil
	case "playlist":
		return KindPlaylist, nil
	case "video":
		return KindVideo, nil
	default:
		return 0, &UnknownEntityError{Kind: name}
	}
}

// Entities are immutable value objects built from one XML fragment.
// Optional fields are pointers: nil means the server did not report the
// field, which is distinct from an empty reported value. Two entities
// with the same ID are independent copies, not unified.

// Artist is one artist entry from an entity-listing response.
type Artist struct {
	ID            string
	Name          *string
	AlbumCount    *int
	SongCount     *int
	Tags          []TagRef
	PreciseRating *int
	Rating        *float64
}

// Album is one album entry. Artist carries the artist's name; ArtistID
// the id attribute of the artist child element.
type Album struct {
	ID            string
	Name          *string
	Artist        *string
	ArtistID      *string
	TrackCount    *int
	Disk          *int
	Tags          []TagRef
	Art           *string
	PreciseRating *int
	Rating        *float64
}

// Song is one song entry. Seconds is the duration, SizeBytes the file
// size, URL the server's streaming URL.
type Song struct {
	ID            string
	Title         *string
	Mime          *string
	Genre         *string
	GenreID       *string
	Artist        *string
	ArtistID      *string
	Album         *string
	AlbumID       *string
	Tags          []TagRef
	Track         *int
	Seconds       *int
	URL           *string
	SizeBytes     *int64
	Art           *string
	PreciseRating *int
	Rating        *float64
}

// Tag is one tag entry with its usage counts. Tags never carry tags of
// their own, so there is no Tags field.
type Tag struct {
	ID            string
	Name          *string
	AlbumCount    *int
	SongCount     *int
	VideoCount    *int
	PlaylistCount *int
	StreamCount   *int
}

// Playlist is one playlist entry.
type Playlist struct {
	ID        string
	Name      *string
	Owner     *string
	ItemCount *int
	Tags      []TagRef
	Type      *string
}

// Video is one video entry.
type Video struct {
	ID         string
	Title      *string
	Mime       *string
	Resolution *string
	SizeBytes  *int64
	Tags       []TagRef
	URL        *string
}
