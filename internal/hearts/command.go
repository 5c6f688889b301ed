package hearts

import (
	"fmt"
	"strings"

	"github.com/lox/heartsforbots/internal/deck"
)

// The text command surface. Both humans and bots answer prompts with these
// commands; the controller parses them into intents.
//
//	PLAY <card>          play a card (the PLAY keyword is optional)
//	PASS <card>...       nominate cards to pass (the PASS keyword is optional)
//	<direction token>    answer a dealer's-choice sub-prompt

// ParsePlayCommand extracts the single card from a PLAY command. Free-form
// text works too ("play the qs"), as long as exactly one card token appears.
func ParsePlayCommand(input string) (deck.Card, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) > 0 {
		switch strings.ToLower(fields[0]) {
		case "play", "p":
			fields = fields[1:]
		}
	}
	if len(fields) == 1 {
		if card, err := deck.ParseCard(fields[0]); err == nil {
			return card, nil
		}
	}
	found := deck.FindCards(input)
	if len(found) != 1 {
		return deck.Card{}, fmt.Errorf("expected a single card to play, got %q", input)
	}
	return found[0], nil
}

// ParsePassCommand extracts the nominated cards from a PASS command. Token
// count validation is the legality checker's job; the parser only needs to
// find card tokens, in order, anywhere in the response.
func ParsePassCommand(input string) ([]deck.Card, error) {
	cards := deck.FindCards(input)
	if len(cards) == 0 {
		return nil, fmt.Errorf("no cards found in %q", input)
	}
	return cards, nil
}

// directionAliases maps accepted dealer's-choice spellings to canonical
// tokens.
var directionAliases = map[string]string{
	"l": "left", "r": "right", "a": "across", "n": "not", "no": "not",
	"none": "not", "c": "central", "center": "central", "centre": "central",
	"s": "scatter",
}

// ParseDirectionChoice normalizes a dealer's-choice direction token and
// validates it against the choices legal for the player count.
func ParseDirectionChoice(input string, valid []string) (string, error) {
	token := strings.ToLower(strings.TrimSpace(input))
	if alias, ok := directionAliases[token]; ok {
		token = alias
	}
	for _, v := range valid {
		if token == v {
			return token, nil
		}
	}
	return "", InvalidDirectionChoiceError{Choice: input, Valid: valid}
}

// directionForChoice maps a canonical dealer's-choice token to a topology.
func directionForChoice(token string) Direction {
	switch token {
	case "left":
		return Direction{Kind: DirLeft}
	case "right":
		return Direction{Kind: DirRight}
	case "across":
		return Direction{Kind: DirAcross}
	case "central":
		return Direction{Kind: DirCenter}
	case "scatter":
		return Direction{Kind: DirScatter}
	default:
		return Direction{Kind: DirNone}
	}
}
