package uno

// Turn cursor arithmetic. Pure functions over (player count, index,
// direction); an empty player list is a legitimate transient state
// during abandonment, so everything here is a safe no-op on zero count.

// Advance returns the next cursor index in the given direction, wrapping
// at both ends.
func Advance(playerCount, current, direction int) int {
	if playerCount == 0 {
		return current
	}
	return ((current+direction)%playerCount + playerCount) % playerCount
}

// PeekNext is Advance without commitment; draw effects use it to find
// the receiving player before the cursor moves past them.
func PeekNext(playerCount, current, direction int) int {
	return Advance(playerCount, current, direction)
}

// Reverse flips the turn direction. The cursor index is untouched.
func Reverse(direction int) int {
	return -direction
}

// AdvanceCursor commits one cursor step on the session.
func (s *Session) AdvanceCursor() {
	s.CurrentPlayerIndex = Advance(len(s.Seats), s.CurrentPlayerIndex, s.TurnDirection)
}

// PeekNextIndex returns the seat index one step ahead of the cursor.
func (s *Session) PeekNextIndex() int {
	return PeekNext(len(s.Seats), s.CurrentPlayerIndex, s.TurnDirection)
}

// ReverseTurn flips the session's turn direction.
func (s *Session) ReverseTurn() {
	s.TurnDirection = Reverse(s.TurnDirection)
}
