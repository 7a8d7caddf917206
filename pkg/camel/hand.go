package camel

// Hand is five cards in the order they were dealt plus their hand type
type Hand struct {
	cards    [HandSize]Card
	handType HandType
}

// NewHand returns a hand for the cards.
// The hand type is always derived from the cards; jokers are resolved as wilds.
func NewHand(cards [HandSize]Card) Hand {
	return Hand{
		cards:    cards,
		handType: BestHandType(cards),
	}
}

// ParseHand parses a hand such as "32T3K"
func ParseHand(s string) (Hand, error) {
	cards, err := CardsFromString(s)
	if err != nil {
		return Hand{}, err
	}

	return NewHand(cards), nil
}

// Cards returns a copy of the cards in dealt order
func (h Hand) Cards() [HandSize]Card {
	return h.cards
}

// Type returns the hand type
func (h Hand) Type() HandType {
	return h.handType
}

// HasJokers returns true if any card is a Joker
func (h Hand) HasJokers() bool {
	for _, card := range h.cards {
		if card == Joker {
			return true
		}
	}

	return false
}

// WithJokers returns a new hand where every Jack is a Joker
func (h Hand) WithJokers() Hand {
	cards := h.cards
	for i, card := range cards {
		if card == Jack {
			cards[i] = Joker
		}
	}

	return NewHand(cards)
}

// Compare returns -1 if h is weaker than other, 1 if it is stronger, and 0 if the
// hands are identical. The hand type decides first, then the cards from left to right.
func (h Hand) Compare(other Hand) int {
	if h.handType != other.handType {
		if h.handType < other.handType {
			return -1
		}

		return 1
	}

	for i, card := range h.cards {
		if card < other.cards[i] {
			return -1
		} else if card > other.cards[i] {
			return 1
		}
	}

	return 0
}

// Less returns true if h is weaker than other
func (h Hand) Less(other Hand) bool {
	return h.Compare(other) < 0
}

func (h Hand) String() string {
	return CardsToString(h.cards[:])
}
