// Package directory resolves player ids to human-readable profiles for
// player-list queries. Lookups are decoration only; a failing directory
// degrades to placeholder values instead of failing the query.
package directory

import "context"

// Profile is the displayable identity of a player.
type Profile struct {
	DisplayName string
	Contact     string
}

// Unknown is substituted whenever a lookup fails.
var Unknown = Profile{
	DisplayName: "Unknown",
	Contact:     "unknown@example.com",
}

type Directory interface {
	Lookup(ctx context.Context, playerID string) (Profile, error)
}

// Decorate resolves a profile for each player id, substituting Unknown
// for any id the directory cannot resolve.
func Decorate(ctx context.Context, dir Directory, playerIDs []string) []Profile {
	profiles := make([]Profile, len(playerIDs))
	for i, id := range playerIDs {
		p, err := dir.Lookup(ctx, id)
		if err != nil {
			p = Unknown
		}
		profiles[i] = p
	}
	return profiles
}

// Static is a fixed in-memory directory.
type Static map[string]Profile

func (d Static) Lookup(ctx context.Context, playerID string) (Profile, error) {
	if p, found := d[playerID]; found {
		return p, nil
	}
	return Profile{}, &notFoundError{playerID}
}

type notFoundError struct {
	playerID string
}

func (e *notFoundError) Error() string {
	return "no profile for player " + e.playerID
}
