package camel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedHand is returned when a hand is not exactly five known card characters
var ErrMalformedHand = errors.New("malformed hand")

// HandSize is the number of cards in a hand
const HandSize = 5

// Card is a single camel card. Higher values are stronger.
type Card int

// card constants, weakest first
const (
	Joker Card = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace

	numCards = int(Ace) + 1
)

// cardRunes maps every non-wild card to its input character
var cardRunes = map[Card]rune{
	Two:   '2',
	Three: '3',
	Four:  '4',
	Five:  '5',
	Six:   '6',
	Seven: '7',
	Eight: '8',
	Nine:  '9',
	Ten:   'T',
	Jack:  'J',
	Queen: 'Q',
	King:  'K',
	Ace:   'A',
}

var runeCards = func() map[rune]Card {
	m := make(map[rune]Card, len(cardRunes))
	for card, r := range cardRunes {
		m[r] = card
	}

	return m
}()

// Rune returns the input character of the card.
// A Joker is printed as the Jack it replaced.
func (c Card) Rune() rune {
	if c == Joker {
		return cardRunes[Jack]
	}

	r, ok := cardRunes[c]
	if !ok {
		panic(fmt.Sprintf("unknown card: %d", c))
	}

	return r
}

func (c Card) String() string {
	return string(c.Rune())
}

// CardFromRune returns the card for an input character
func CardFromRune(r rune) (Card, error) {
	card, ok := runeCards[r]
	if !ok {
		return 0, fmt.Errorf("%w: unknown card %q", ErrMalformedHand, r)
	}

	return card, nil
}

// CardsFromString parses exactly HandSize card characters
func CardsFromString(s string) ([HandSize]Card, error) {
	var cards [HandSize]Card

	runes := []rune(s)
	if len(runes) != HandSize {
		return cards, fmt.Errorf("%w: expected %d cards, got %q", ErrMalformedHand, HandSize, s)
	}

	for i, r := range runes {
		card, err := CardFromRune(r)
		if err != nil {
			return cards, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString converts cards back to their input characters
func CardsToString(cards []Card) string {
	var sb strings.Builder
	for _, card := range cards {
		sb.WriteRune(card.Rune())
	}

	return sb.String()
}
