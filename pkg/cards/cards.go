package cards

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

type Cards []Card

// MakeDeck builds the standard 108-card deck: per color one 0, two each
// of 1-9, two Skips, two Reverses, two DrawTwos; plus four Wilds and
// four WildDrawFours. Every card gets a fresh id.
func MakeDeck() Cards {
	d := make(Cards, 0, 108)
	add := func(c Card) {
		c.ID = uuid.NewString()
		d = append(d, c)
	}
	for _, color := range Colors {
		add(Card{Color: color, Kind: Number, Value: 0})
		for v := 1; v <= 9; v++ {
			add(Card{Color: color, Kind: Number, Value: v})
			add(Card{Color: color, Kind: Number, Value: v})
		}
		for i := 0; i < 2; i++ {
			add(Card{Color: color, Kind: Skip})
			add(Card{Color: color, Kind: Reverse})
			add(Card{Color: color, Kind: DrawTwo})
		}
	}
	for i := 0; i < 4; i++ {
		add(Card{Kind: Wild})
		add(Card{Kind: WildDrawFour})
	}
	return d
}

func (cs Cards) Copy() Cards {
	cardsCopy := make(Cards, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

// Equals compares faces, order insensitive.
func (cs Cards) Equals(other Cards) bool {
	if len(cs) != len(other) {
		return false
	}
	sorted := cs.Copy()
	sorted.Sort()
	otherSorted := other.Copy()
	otherSorted.Sort()
	for i := range sorted {
		if !sorted[i].SameFace(otherSorted[i]) {
			return false
		}
	}
	return true
}

func (cs Cards) Contains(match func(Card) bool) bool {
	for _, c := range cs {
		if match(c) {
			return true
		}
	}
	return false
}

func (cs Cards) ContainsCard(c Card) bool {
	return cs.Contains(func(oc Card) bool { return oc.ID == c.ID })
}

func (cs Cards) ContainsID(id string) bool {
	return cs.Contains(func(c Card) bool { return c.ID == id })
}

// FindID returns the card with the given id, if present.
func (cs Cards) FindID(id string) (Card, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// RemoveID removes the card with the given id, preserving order.
func (cs Cards) RemoveID(id string) Cards {
	for i, c := range cs {
		if c.ID == id {
			copy(cs[i:], cs[i+1:])
			return cs[:len(cs)-1]
		}
	}
	return cs
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterByColor(colors ...Color) Cards {
	return cs.Filter(func(c Card) bool {
		return slices.Contains(colors, c.Color)
	})
}

func (cs Cards) FilterByKind(kinds ...Kind) Cards {
	return cs.Filter(func(c Card) bool {
		return slices.Contains(kinds, c.Kind)
	})
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}

func (cs Cards) CountColor(color Color) int {
	return cs.Count(func(c Card) bool { return c.Color == color })
}

func (cs Cards) CountKind(kind Kind) int {
	return cs.Count(func(c Card) bool { return c.Kind == kind })
}

// Sort orders by color, then kind, then value. Stable for display.
func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Color != cs[j].Color {
			return cs[i].Color < cs[j].Color
		}
		if cs[i].Kind != cs[j].Kind {
			return cs[i].Kind < cs[j].Kind
		}
		return cs[i].Value < cs[j].Value
	})
}

func (cs Cards) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	return strings.Join(cs.Strings(), " ")
}

func Combine(cardss ...Cards) Cards {
	var cs Cards
	for _, cards := range cardss {
		cs = append(cs, cards...)
	}
	return cs
}

// Deal splits handSize cards off the deck for each of numHands hands and
// returns the hands plus the remaining draw pile. A short deck deals
// round-robin until it runs out.
func Deal(deck Cards, numHands, handSize int) ([]Cards, Cards) {
	hands := make([]Cards, numHands)
	rest := deck.Copy()
	for i := 0; i < handSize; i++ {
		for h := 0; h < numHands; h++ {
			if len(rest) == 0 {
				return hands, rest
			}
			hands[h] = append(hands[h], rest[0])
			rest = rest[1:]
		}
	}
	return hands, rest
}
