package uno

import "context"

// Store errors. Stores must return these (possibly wrapped) so callers
// can classify by code.
var (
	ErrNotFound        = &Error{Code: CodeSessionNotFound, Message: "session not found"}
	ErrVersionConflict = &Error{Code: CodeVersionConflict, Message: "session was modified concurrently"}
)

// Store persists sessions. Load returns a private copy the caller may
// mutate. Save rejects stale versions with ErrVersionConflict and bumps
// the version on success. Finalize ends a session in one step: status,
// winner (empty for no winner), and end timestamp. A finalized session
// is never written again.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Finalize(ctx context.Context, id, winnerID string) error
}
