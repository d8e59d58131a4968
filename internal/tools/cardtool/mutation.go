package cardtool

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/reportcard/internal/reportcard"
)

// MutationKind names the card field a mutation changes.
type MutationKind string

const (
	MutateGrade  MutationKind = "set-grade"
	MutateLetter MutationKind = "set-letter"
	MutateCourse MutationKind = "set-course"
)

// Mutation is one post-creation change, applied in command-line order.
type Mutation struct {
	Kind  MutationKind
	Slot  int
	Value string
	Grade float32
}

type rawMutation struct {
	kind  MutationKind
	value string
}

// Apply performs the mutation on card.
func (m Mutation) Apply(card *reportcard.Card) error {
	switch m.Kind {
	case MutateGrade:
		return card.SetGrade(m.Grade, m.Slot)
	case MutateLetter:
		return card.SetLetterGrade(m.Value, m.Slot)
	case MutateCourse:
		card.SetCourse(m.Value, m.Slot)
		return nil
	default:
		return fmt.Errorf("unknown mutation %q", m.Kind)
	}
}

// String renders the mutation the way it was given on the command line.
func (m Mutation) String() string {
	return fmt.Sprintf("-%s %d=%s", m.Kind, m.Slot, m.Value)
}

func parseMutation(kind MutationKind, value string) (Mutation, error) {
	slotText, rest, ok := strings.Cut(value, "=")
	if !ok {
		return Mutation{}, invalidInput(value, errors.New("expected SLOT=VALUE"))
	}
	slot, err := strconv.Atoi(strings.TrimSpace(slotText))
	if err != nil {
		return Mutation{}, invalidInput(value, err)
	}
	m := Mutation{Kind: kind, Slot: slot, Value: rest}
	if kind == MutateGrade {
		grade, err := parseGrade(strings.TrimSpace(rest))
		if err != nil {
			return Mutation{}, err
		}
		m.Grade = grade
	}
	return m, nil
}
