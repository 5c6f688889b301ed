package hearts

import (
	"context"
	"fmt"
)

// DirectionKind identifies a passing topology family.
type DirectionKind int

const (
	DirNone DirectionKind = iota
	DirLeft
	DirRight
	DirAcross
	DirOffset  // rotate-left: a fixed seat offset from the passer
	DirCenter  // everyone passes to a shuffled central pool
	DirScatter // one card to every other player
)

// Direction is a passing topology for one round.
type Direction struct {
	Kind   DirectionKind
	Offset int // seats to the left, DirOffset only
}

// Label returns the display label for the direction.
func (d Direction) Label() string {
	switch d.Kind {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirAcross:
		return "across"
	case DirOffset:
		return fmt.Sprintf("left-%d", d.Offset)
	case DirCenter:
		return "central"
	case DirScatter:
		return "scatter"
	default:
		return "not"
	}
}

// SeatToSeat reports whether the direction maps each seat to a unique
// recipient seat. Central and scatter redistribute differently.
func (d Direction) SeatToSeat() bool {
	switch d.Kind {
	case DirLeft, DirRight, DirAcross, DirOffset:
		return true
	default:
		return false
	}
}

// Recipient returns the seat that receives this seat's pass buffer. Only
// valid for seat-to-seat directions.
func (d Direction) Recipient(seat, numPlayers int) int {
	var offset int
	switch d.Kind {
	case DirLeft:
		offset = 1
	case DirRight:
		offset = numPlayers - 1
	case DirAcross:
		offset = numPlayers / 2
	case DirOffset:
		offset = d.Offset
	}
	return (seat + offset) % numPlayers
}

// PassRound is one round's passing topology and card count.
type PassRound struct {
	Direction Direction
	Count     int
}

// DirectionChooser supplies the topology and count for one round in
// dealer's-choice mode. It is consulted exactly once per round.
type DirectionChooser func(ctx context.Context) (PassRound, error)

// PassSequencer produces the passing topology and count for each round: a
// lazy, infinite, non-restartable sequence pulled once per round. Fixed
// cycles hold their own position; dealer's choice defers to a chooser.
type PassSequencer struct {
	cycle   []PassRound
	pos     int
	chooser DirectionChooser
}

// NewPassSequencer builds the sequencer for the configured direction label.
// The chooser is required only for the "dealer" label.
func NewPassSequencer(opts Options, numPlayers, numPass int, chooser DirectionChooser) (*PassSequencer, error) {
	fixed := func(kinds ...Direction) []PassRound {
		rounds := make([]PassRound, len(kinds))
		for i, d := range kinds {
			rounds[i] = PassRound{Direction: d, Count: numPass}
			switch d.Kind {
			case DirNone:
				rounds[i].Count = 0
			case DirScatter:
				rounds[i].Count = numPlayers - 1
			}
		}
		return rounds
	}

	s := &PassSequencer{}
	switch opts.PassDir {
	case "left":
		s.cycle = fixed(Direction{Kind: DirLeft})
	case "right":
		s.cycle = fixed(Direction{Kind: DirRight})
	case "across":
		if numPlayers%2 != 0 {
			return nil, fmt.Errorf("passing across requires an even player count, got %d", numPlayers)
		}
		s.cycle = fixed(Direction{Kind: DirAcross})
	case "left-right":
		s.cycle = fixed(Direction{Kind: DirLeft}, Direction{Kind: DirRight})
	case "right-left":
		s.cycle = fixed(Direction{Kind: DirRight}, Direction{Kind: DirLeft})
	case "lran":
		s.cycle = fixed(
			Direction{Kind: DirLeft},
			Direction{Kind: DirRight},
			Direction{Kind: DirAcross},
			Direction{Kind: DirNone},
		)
	case "rot-left":
		// Offset from the passer grows each round until it would wrap to
		// self, then a round without passing, then the cycle restarts.
		dirs := []Direction{{Kind: DirLeft}}
		for off := 2; off < numPlayers; off++ {
			dirs = append(dirs, Direction{Kind: DirOffset, Offset: off})
		}
		dirs = append(dirs, Direction{Kind: DirNone})
		s.cycle = fixed(dirs...)
	case "central":
		s.cycle = fixed(Direction{Kind: DirCenter})
	case "not":
		s.cycle = fixed(Direction{Kind: DirNone})
	case "scatter":
		s.cycle = fixed(Direction{Kind: DirScatter})
	case "dealer":
		if chooser == nil {
			return nil, fmt.Errorf("dealer's choice requires a chooser")
		}
		s.chooser = chooser
	default:
		return nil, fmt.Errorf("invalid pass direction %q", opts.PassDir)
	}
	return s, nil
}

// Next returns the topology and count for the upcoming round. The sequence
// never restarts; fixed cycles wrap, dealer's choice asks again.
func (s *PassSequencer) Next(ctx context.Context) (PassRound, error) {
	if s.chooser != nil {
		return s.chooser(ctx)
	}
	round := s.cycle[s.pos%len(s.cycle)]
	s.pos++
	return round, nil
}

// validDealerChoices lists the direction tokens a dealer may choose for the
// player count. Across needs seats that face each other.
func validDealerChoices(numPlayers int) []string {
	choices := []string{"left", "right", "not", "central", "scatter"}
	if numPlayers == 4 || numPlayers == 6 {
		choices = append(choices, "across")
	}
	return choices
}
