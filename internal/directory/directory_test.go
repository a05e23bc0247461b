package directory

import (
	"context"
	"errors"
	"testing"
)

type failingDirectory struct{}

func (failingDirectory) Lookup(ctx context.Context, playerID string) (Profile, error) {
	return Profile{}, errors.New("directory offline")
}

func TestStaticLookup(t *testing.T) {
	dir := Static{"p1": {DisplayName: "Alice", Contact: "alice@example.com"}}
	p, err := dir.Lookup(context.Background(), "p1")
	if err != nil || p.DisplayName != "Alice" {
		t.Errorf("Lookup p1 = %+v, %v", p, err)
	}
	if _, err := dir.Lookup(context.Background(), "p2"); err == nil {
		t.Error("Lookup unknown id succeeded")
	}
}

func TestDecorateDegradesToPlaceholder(t *testing.T) {
	dir := Static{"p1": {DisplayName: "Alice", Contact: "alice@example.com"}}
	profiles := Decorate(context.Background(), dir, []string{"p1", "p2"})
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}
	if profiles[0].DisplayName != "Alice" {
		t.Errorf("profiles[0] = %+v", profiles[0])
	}
	if profiles[1] != Unknown {
		t.Errorf("profiles[1] = %+v, want Unknown placeholder", profiles[1])
	}
}

func TestDecorateWithOfflineDirectory(t *testing.T) {
	profiles := Decorate(context.Background(), failingDirectory{}, []string{"p1", "p2"})
	for i, p := range profiles {
		if p != Unknown {
			t.Errorf("profiles[%d] = %+v, want Unknown placeholder", i, p)
		}
	}
}
