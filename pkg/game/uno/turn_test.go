package uno

import "testing"

func TestAdvanceWrapsForward(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			idx := start
			for step := 1; step <= 2*n; step++ {
				idx = Advance(n, idx, 1)
				want := (start + step) % n
				if idx != want {
					t.Fatalf("Advance(n=%d) from %d after %d steps = %d, want %d", n, start, step, idx, want)
				}
			}
		}
	}
}

func TestAdvanceWrapsBackward(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			idx := start
			for step := 1; step <= 2*n; step++ {
				idx = Advance(n, idx, -1)
				want := ((start-step)%n + n) % n
				if idx != want {
					t.Fatalf("Advance(n=%d,dir=-1) from %d after %d steps = %d, want %d", n, start, step, idx, want)
				}
			}
		}
	}
}

func TestAdvanceEmptyIsNoop(t *testing.T) {
	if got := Advance(0, 3, 1); got != 3 {
		t.Errorf("Advance(0,3,1)=%d, want 3", got)
	}
	if got := PeekNext(0, 0, -1); got != 0 {
		t.Errorf("PeekNext(0,0,-1)=%d, want 0", got)
	}
}

func TestReverse(t *testing.T) {
	if got := Reverse(1); got != -1 {
		t.Errorf("Reverse(1)=%d, want -1", got)
	}
	if got := Reverse(-1); got != 1 {
		t.Errorf("Reverse(-1)=%d, want 1", got)
	}
}

func TestReverseTurnKeepsCursor(t *testing.T) {
	s := &Session{
		Seats:              make([]Seat, 4),
		CurrentPlayerIndex: 2,
		TurnDirection:      1,
	}
	s.ReverseTurn()
	if s.TurnDirection != -1 {
		t.Errorf("TurnDirection=%d, want -1", s.TurnDirection)
	}
	if s.CurrentPlayerIndex != 2 {
		t.Errorf("CurrentPlayerIndex=%d, want 2", s.CurrentPlayerIndex)
	}
}
