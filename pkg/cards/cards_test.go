package cards

import (
	"math/rand"
	"testing"
)

func TestMakeDeckComposition(t *testing.T) {
	d := MakeDeck()
	if len(d) != 108 {
		t.Fatalf("MakeDeck()=%d cards, want 108", len(d))
	}
	for _, color := range Colors {
		colored := d.FilterByColor(color)
		if got := len(colored); got != 25 {
			t.Errorf("color %s has %d cards, want 25", color, got)
		}
		if got := colored.Count(func(c Card) bool { return c.Kind == Number && c.Value == 0 }); got != 1 {
			t.Errorf("color %s has %d zeroes, want 1", color, got)
		}
		for v := 1; v <= 9; v++ {
			v := v
			if got := colored.Count(func(c Card) bool { return c.Kind == Number && c.Value == v }); got != 2 {
				t.Errorf("color %s has %d %ds, want 2", color, got, v)
			}
		}
		for _, kind := range []Kind{Skip, Reverse, DrawTwo} {
			if got := colored.CountKind(kind); got != 2 {
				t.Errorf("color %s has %d %s cards, want 2", color, got, kind)
			}
		}
	}
	if got := d.CountKind(Wild); got != 4 {
		t.Errorf("deck has %d wilds, want 4", got)
	}
	if got := d.CountKind(WildDrawFour); got != 4 {
		t.Errorf("deck has %d wild draw fours, want 4", got)
	}
}

func TestMakeDeckUniqueIds(t *testing.T) {
	d := MakeDeck()
	seen := make(map[string]bool)
	for _, c := range d {
		if c.ID == "" {
			t.Fatalf("card %s has empty id", c)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate card id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"r5", Card{Color: Red, Kind: Number, Value: 5}},
		{"g0", Card{Color: Green, Kind: Number, Value: 0}},
		{"bS", Card{Color: Blue, Kind: Skip}},
		{"yR", Card{Color: Yellow, Kind: Reverse}},
		{"r+2", Card{Color: Red, Kind: DrawTwo}},
		{"W", Card{Kind: Wild}},
		{"W4", Card{Kind: WildDrawFour}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCard(tc.in)
			if err != nil {
				t.Fatalf("ParseCard(%q): %v", tc.in, err)
			}
			if !got.SameFace(tc.want) {
				t.Errorf("ParseCard(%q)=%s, want %s", tc.in, got, tc.want)
			}
			if got.String() != tc.in {
				t.Errorf("ParseCard(%q).String()=%q, want %q", tc.in, got.String(), tc.in)
			}
		})
	}
}

func TestParseCardRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "x5", "r", "rr", "r10", "W5", "5r"} {
		if _, err := ParseCard(in); err == nil {
			t.Errorf("ParseCard(%q) succeeded, want error", in)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, color := range Colors {
		got, err := ParseColor(color.String())
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", color.String(), err)
		}
		if got != color {
			t.Errorf("ParseColor(%q)=%v, want %v", color.String(), got, color)
		}
	}
	if _, err := ParseColor("w"); err == nil {
		t.Error("ParseColor(\"w\") succeeded, want error")
	}
	if NoColor.Playable() {
		t.Error("NoColor.Playable()=true, want false")
	}
}

func TestRemoveID(t *testing.T) {
	hand := Cards{
		{ID: "a", Color: Red, Kind: Number, Value: 1},
		{ID: "b", Color: Green, Kind: Skip},
		{ID: "c", Color: Blue, Kind: Number, Value: 7},
	}
	got := hand.Copy().RemoveID("b")
	if len(got) != 2 {
		t.Fatalf("RemoveID left %d cards, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("RemoveID reordered hand: %s", got)
	}
	same := hand.Copy().RemoveID("missing")
	if len(same) != 3 {
		t.Errorf("RemoveID(missing) removed a card: %s", same)
	}
}

func TestDeal(t *testing.T) {
	deck := MakeDeck()
	rng := rand.New(rand.NewSource(1))
	deck.Shuffle(rng)
	for numHands := 2; numHands <= 6; numHands++ {
		hands, rest := Deal(deck, numHands, 7)
		if len(hands) != numHands {
			t.Fatalf("Deal(%d)=%d hands, want %d", numHands, len(hands), numHands)
		}
		for _, h := range hands {
			if len(h) != 7 {
				t.Errorf("Deal(%d): hand has %d cards, want 7", numHands, len(h))
			}
		}
		all := Combine(append([]Cards{rest}, hands...)...)
		if !all.Equals(deck) {
			t.Errorf("Deal(%d): hands+rest don't reconstruct the deck", numHands)
		}
	}
}

func TestDealShortDeck(t *testing.T) {
	deck := MakeDeck()[:5]
	hands, rest := Deal(deck, 2, 7)
	if len(rest) != 0 {
		t.Errorf("short deal left %d cards in the pile, want 0", len(rest))
	}
	total := len(hands[0]) + len(hands[1])
	if total != 5 {
		t.Errorf("short deal dealt %d cards, want 5", total)
	}
}
