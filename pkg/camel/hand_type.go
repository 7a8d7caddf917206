package camel

import "fmt"

// HandType is the category a hand falls into, i.e., full house
type HandType int

// Constants for hand type, weakest first
const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// String returns the string representation of a hand type
func (h HandType) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown hand type: %d", h))
	}
}

type cardCounts [numCards]int

func countCards(cards [HandSize]Card) cardCounts {
	var counts cardCounts
	for _, card := range cards {
		counts[card]++
	}

	return counts
}

// Classify returns the hand type of the cards.
// A Joker is treated as its own card value here; see BestHandType for wild jokers.
func Classify(cards [HandSize]Card) HandType {
	counts := countCards(cards)

	var quints, quads, trips, pairs int
	for _, n := range counts {
		switch n {
		case 5:
			quints++
		case 4:
			quads++
		case 3:
			trips++
		case 2:
			pairs++
		}
	}

	switch {
	case quints > 0:
		return FiveOfAKind
	case quads > 0:
		return FourOfAKind
	case trips == 1 && pairs == 1:
		return FullHouse
	case trips == 1:
		return ThreeOfAKind
	case pairs == 2:
		return TwoPair
	case pairs == 1:
		return OnePair
	default:
		return HighCard
	}
}

// BestHandType returns the strongest hand type the cards can make when every Joker
// may stand in for any other card. All jokers are replaced by the most frequent
// non-joker card; five jokers are five of a kind.
func BestHandType(cards [HandSize]Card) HandType {
	card, ok := mostFrequentCard(countCards(cards))
	if !ok {
		return FiveOfAKind
	}

	return Classify(substituteJokers(cards, card))
}

// mostFrequentCard returns the non-joker card with the highest count.
// When several cards share the highest count the strongest one is returned;
// the resulting hand type does not depend on that choice.
func mostFrequentCard(counts cardCounts) (Card, bool) {
	best, bestCount := Joker, 0
	for card := Ace; card > Joker; card-- {
		if counts[card] > bestCount {
			best, bestCount = card, counts[card]
		}
	}

	return best, bestCount > 0
}

func substituteJokers(cards [HandSize]Card, with Card) [HandSize]Card {
	for i, card := range cards {
		if card == Joker {
			cards[i] = with
		}
	}

	return cards
}
