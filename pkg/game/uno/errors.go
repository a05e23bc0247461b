package uno

import (
	"errors"
	"fmt"
)

// Code is a machine-readable rule-violation code.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Session lookup
	CodeSessionNotFound  Code = "SESSION_NOT_FOUND"
	CodeInvalidSessionID Code = "INVALID_SESSION_ID"

	// Lobby rules
	CodeNotAcceptingPlayers Code = "NOT_ACCEPTING_PLAYERS"
	CodeSessionFull         Code = "SESSION_FULL"
	CodeAlreadySeated       Code = "ALREADY_SEATED"
	CodeNotCreator          Code = "NOT_CREATOR"
	CodeAlreadyStarted      Code = "ALREADY_STARTED"
	CodeMinimumPlayersUnmet Code = "MINIMUM_PLAYERS_UNMET"
	CodeNotAllReady         Code = "NOT_ALL_READY"

	// In-game rules
	CodeNotSeated         Code = "NOT_SEATED"
	CodeSessionNotActive  Code = "SESSION_NOT_ACTIVE"
	CodeNotYourTurn       Code = "NOT_YOUR_TURN"
	CodeCardNotInHand     Code = "CARD_NOT_IN_HAND"
	CodeInvalidCardAction Code = "INVALID_CARD_ACTION"

	// Internal inconsistency, not player error
	CodeNoSeatedPlayers            Code = "NO_SEATED_PLAYERS"
	CodeIndeterminateCurrentPlayer Code = "INDETERMINATE_CURRENT_PLAYER"

	// Storage
	CodeVersionConflict Code = "VERSION_CONFLICT"
)

// Internal reports whether the code signals corrupted state rather than
// a rule violation. Transports should surface these as server faults.
func (c Code) Internal() bool {
	switch c {
	case CodeNoSeatedPlayers, CodeIndeterminateCurrentPlayer:
		return true
	}
	return false
}

// Error is a rule violation or storage failure with a stable code.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the rule code from an error chain, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
