package cards

import (
	"fmt"
	"strings"
)

// A card's color. Wild cards carry NoColor until a color is chosen.
type Color int8

const (
	NoColor Color = iota
	Red
	Yellow
	Green
	Blue
)

// The four playable colors. NoColor is deliberately absent.
var Colors = []Color{
	Red,
	Yellow,
	Green,
	Blue,
}

func (c Color) String() string {
	switch c {
	case NoColor:
		return "-"
	case Red:
		return "r"
	case Yellow:
		return "y"
	case Green:
		return "g"
	case Blue:
		return "b"
	}
	panic("Unknown Color")
}

// Playable reports whether c is one of the four table colors.
func (c Color) Playable() bool {
	for _, pc := range Colors {
		if c == pc {
			return true
		}
	}
	return false
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "r":
		return Red, nil
	case "y":
		return Yellow, nil
	case "g":
		return Green, nil
	case "b":
		return Blue, nil
	}
	return NoColor, fmt.Errorf("no such color '%s'", s)
}

// A card's kind.
type Kind int8

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var Kinds = []Kind{
	Number,
	Skip,
	Reverse,
	DrawTwo,
	Wild,
	WildDrawFour,
}

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case DrawTwo:
		return "draw_two"
	case Wild:
		return "wild"
	case WildDrawFour:
		return "wild_draw_four"
	}
	panic("Unknown Kind")
}

type Card struct {
	ID    string
	Color Color
	Kind  Kind
	Value int // digit 0-9, Number cards only
}

// String renders the face of the card: "r5", "gS", "bR", "y+2", "W", "W4".
func (c Card) String() string {
	switch c.Kind {
	case Number:
		return fmt.Sprintf("%s%d", c.Color, c.Value)
	case Skip:
		return c.Color.String() + "S"
	case Reverse:
		return c.Color.String() + "R"
	case DrawTwo:
		return c.Color.String() + "+2"
	case Wild:
		return "W"
	case WildDrawFour:
		return "W4"
	}
	panic("Unknown Kind")
}

// ParseCard parses a face string as produced by Card.String.
// The returned card has no ID; callers matching against a hand should
// compare faces, not identity.
func ParseCard(s string) (Card, error) {
	switch s {
	case "W":
		return Card{Kind: Wild}, nil
	case "W4":
		return Card{Kind: WildDrawFour}, nil
	}
	if len(s) < 2 {
		return Card{}, fmt.Errorf("can't parse card '%s'", s)
	}
	color, err := ParseColor(s[0:1])
	if err != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", s)
	}
	switch rest := s[1:]; rest {
	case "S":
		return Card{Color: color, Kind: Skip}, nil
	case "R":
		return Card{Color: color, Kind: Reverse}, nil
	case "+2":
		return Card{Color: color, Kind: DrawTwo}, nil
	default:
		if len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
			return Card{}, fmt.Errorf("can't parse card '%s'", s)
		}
		return Card{Color: color, Kind: Number, Value: int(rest[0] - '0')}, nil
	}
}

// SameFace reports whether two cards show the same face, ignoring identity.
func (c Card) SameFace(other Card) bool {
	return c.Color == other.Color && c.Kind == other.Kind && c.Value == other.Value
}
