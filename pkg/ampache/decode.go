package ampache

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// extractText concatenates the character data (text and CDATA) of the
// node's direct children, in document order. Non-text children are
// skipped, not recursed into. Absent text yields "".
func extractText(n *xmlquery.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// dictify flattens one entity element into a field mapping: for each
// direct element child, name -> extracted text, and additionally
// "<name>Id" -> the child's id attribute when it carries one. Later
// children with the same name overwrite earlier entries.
func dictify(n *xmlquery.Node) Fields {
	f := Fields{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		for _, a := range c.Attr {
			if a.Name.Local == "id" {
				f[c.Data+"Id"] = a.Value
				break
			}
		}
		f[c.Data] = extractText(c)
	}
	return f
}

// collectTags returns one TagRef per <tag> descendant of the entity
// element, at any depth, in document order. The owner id is the entity
// element's own id attribute, not the tag's. Duplicates are preserved.
// The result is never nil: an entity without tags reports an empty
// list, which is distinct from a Tag entity where the field does not
// exist at all.
func collectTags(n *xmlquery.Node) []TagRef {
	owner := n.SelectAttr("id")
	tags := []TagRef{}
	for _, tn := range xmlquery.Find(n, ".//tag") {
		tags = append(tags, TagRef{OwnerID: owner, Text: extractText(tn)})
	}
	return tags
}

// rawEntity is one matched entity element reduced to its id, field
// mapping and tag list, ready for a typed constructor.
type rawEntity struct {
	id     string
	fields Fields
	tags   []TagRef
}

// scanEntities locates every element of the kind's name in the
// document, at any depth, and normalizes each into a rawEntity. The
// kind is validated before any scanning so an invalid kind fails fast.
// An empty result is valid.
func scanEntities(doc *xmlquery.Node, kind Kind) ([]rawEntity, error) {
	elem := kind.element()
	if elem == "" {
		return nil, &UnknownEntityError{Kind: strconv.Itoa(int(kind))}
	}

	var out []rawEntity
	for _, node := range xmlquery.Find(doc, "//"+elem) {
		f := dictify(node)

		// Nested <tag> children leak into the mapping; the collected
		// tag list supersedes them. A nested <id> child cannot
		// override the element's own id attribute either.
		delete(f, "tag")
		delete(f, "tagId")
		delete(f, "id")

		raw := rawEntity{
			id:     node.SelectAttr("id"),
			fields: f,
		}
		if kind != KindTag {
			raw.tags = collectTags(node)
		}
		out = append(out, raw)
	}
	return out, nil
}

// rootElement returns the document's root element, skipping the XML
// declaration, or nil if the document has none.
func rootElement(doc *xmlquery.Node) *xmlquery.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// optString returns the field as a pointer, nil when absent. An empty
// reported value stays a non-nil pointer to "".
func optString(f Fields, key string) *string {
	if v, ok := f[key]; ok {
		return &v
	}
	return nil
}

// optInt parses the field as an integer. Absent, empty, or unparsable
// values are treated as absent.
func optInt(f Fields, key string) *int {
	v, ok := f[key]
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &n
}

func optInt64(f Fields, key string) *int64 {
	v, ok := f[key]
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func optFloat(f Fields, key string) *float64 {
	v, ok := f[key]
	if !ok {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil
	}
	return &n
}

func decodeArtists(doc *xmlquery.Node) ([]Artist, error) {
	raws, err := scanEntities(doc, KindArtist)
	if err != nil {
		return nil, err
	}
	out := make([]Artist, 0, len(raws))
	for _, r := range raws {
		out = append(out, Artist{
			ID:            r.id,
			Name:          optString(r.fields, "name"),
			AlbumCount:    optInt(r.fields, "albums"),
			SongCount:     optInt(r.fields, "songs"),
			Tags:          r.tags,
			PreciseRating: optInt(r.fields, "preciserating"),
			Rating:        optFloat(r.fields, "rating"),
		})
	}
	return out, nil
}

func decodeAlbums(doc *xmlquery.Node) ([]Album, error) {
	raws, err := scanEntities(doc, KindAlbum)
	if err != nil {
		return nil, err
	}
	out := make([]Album, 0, len(raws))
	for _, r := range raws {
		out = append(out, Album{
			ID:            r.id,
			Name:          optString(r.fields, "name"),
			Artist:        optString(r.fields, "artist"),
			ArtistID:      optString(r.fields, "artistId"),
			TrackCount:    optInt(r.fields, "tracks"),
			Disk:          optInt(r.fields, "disk"),
			Tags:          r.tags,
			Art:           optString(r.fields, "art"),
			PreciseRating: optInt(r.fields, "preciserating"),
			Rating:        optFloat(r.fields, "rating"),
		})
	}
	return out, nil
}

func decodeSongs(doc *xmlquery.Node) ([]Song, error) {
	raws, err := scanEntities(doc, KindSong)
	if err != nil {
		return nil, err
	}
	out := make([]Song, 0, len(raws))
	for _, r := range raws {
		out = append(out, Song{
			ID:            r.id,
			Title:         optString(r.fields, "title"),
			Mime:          optString(r.fields, "mime"),
			Genre:         optString(r.fields, "genre"),
			GenreID:       optString(r.fields, "genreId"),
			Artist:        optString(r.fields, "artist"),
			ArtistID:      optString(r.fields, "artistId"),
			Album:         optString(r.fields, "album"),
			AlbumID:       optString(r.fields, "albumId"),
			Tags:          r.tags,
			Track:         optInt(r.fields, "track"),
			Seconds:       optInt(r.fields, "time"),
			URL:           optString(r.fields, "url"),
			SizeBytes:     optInt64(r.fields, "size"),
			Art:           optString(r.fields, "art"),
			PreciseRating: optInt(r.fields, "preciserating"),
			Rating:        optFloat(r.fields, "rating"),
		})
	}
	return out, nil
}

func decodeTags(doc *xmlquery.Node) ([]Tag, error) {
	raws, err := scanEntities(doc, KindTag)
	if err != nil {
		return nil, err
	}
	out := make([]Tag, 0, len(raws))
	for _, r := range raws {
		out = append(out, Tag{
			ID:            r.id,
			Name:          optString(r.fields, "name"),
			AlbumCount:    optInt(r.fields, "albums"),
			SongCount:     optInt(r.fields, "songs"),
			VideoCount:    optInt(r.fields, "video"),
			PlaylistCount: optInt(r.fields, "playlist"),
			StreamCount:   optInt(r.fields, "stream"),
		})
	}
	return out, nil
}

func decodePlaylists(doc *xmlquery.Node) ([]Playlist, error) {
	raws, err := scanEntities(doc, KindPlaylist)
	if err != nil {
		return nil, err
	}
	out := make([]Playlist, 0, len(raws))
	for _, r := range raws {
		out = append(out, Playlist{
			ID:        r.id,
			Name:      optString(r.fields, "name"),
			Owner:     optString(r.fields, "owner"),
			ItemCount: optInt(r.fields, "items"),
			Tags:      r.tags,
			Type:      optString(r.fields, "type"),
		})
	}
	return out, nil
}

func decodeVideos(doc *xmlquery.Node) ([]Video, error) {
	raws, err := scanEntities(doc, KindVideo)
	if err != nil {
		return nil, err
	}
	out := make([]Video, 0, len(raws))
	for _, r := range raws {
		out = append(out, Video{
			ID:         r.id,
			Title:      optString(r.fields, "title"),
			Mime:       optString(r.fields, "mime"),
			Resolution: optString(r.fields, "resolution"),
			SizeBytes:  optInt64(r.fields, "size"),
			Tags:       r.tags,
			URL:        optString(r.fields, "url"),
		})
	}
	return out, nil
}
