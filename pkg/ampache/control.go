package ampache

import (
	"context"
	"fmt"
)

// ControlService drives the server's playback modes (localplay and
// democratic play). These actions return no entities; success is the
// absence of an error element.
type ControlService struct {
	client *Client
}

// LocalplayCommand is one of the playback commands the localplay
// controller accepts.
type LocalplayCommand string

const (
	LocalplayNext LocalplayCommand = "next"
	LocalplayPrev LocalplayCommand = "prev"
	LocalplayStop LocalplayCommand = "stop"
	LocalplayPlay LocalplayCommand = "play"
)

// DemocraticMethod is one of the democratic play methods.
type DemocraticMethod string

const (
	DemocraticVote     DemocraticMethod = "vote"
	DemocraticDevote   DemocraticMethod = "devote"
	DemocraticPlaylist DemocraticMethod = "playlist"
	DemocraticPlay     DemocraticMethod = "play"
)

// Localplay sends a playback command to the server's localplay
// controller. Unknown commands are rejected before anything is
// transmitted.
func (s *ControlService) Localplay(ctx context.Context, cmd LocalplayCommand) error {
	switch cmd {
	case LocalplayNext, LocalplayPrev, LocalplayStop, LocalplayPlay:
	default:
		return fmt.Errorf("ampache: invalid localplay command %q", cmd)
	}

	_, err := s.client.call(ctx, "localplay", map[string]string{
		"command": string(cmd),
	})
	return err
}

// Democratic drives the server's democratic play queue. The vote and
// devote methods act on a single object and require its id; playlist
// and play take none.
func (s *ControlService) Democratic(ctx context.Context, method DemocraticMethod, oid string) error {
	switch method {
	case DemocraticVote, DemocraticDevote:
		if oid == "" {
			return fmt.Errorf("ampache: democratic %s requires an object id", method)
		}
	case DemocraticPlaylist, DemocraticPlay:
	default:
		return fmt.Errorf("ampache: invalid democratic method %q", method)
	}

	_, err := s.client.call(ctx, "democratic", map[string]string{
		"method": string(method),
		"oid":    oid,
	})
	return err
}
