package entity

import (
	"fmt"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
)

// Kind is one of the three monster kinds.
type Kind string

const (
	KindVampire  Kind = "vampire"
	KindWerewolf Kind = "werewolf"
	KindGhost    Kind = "ghost"
)

// Kinds lists every known kind.
var Kinds = []Kind{KindVampire, KindWerewolf, KindGhost}

func (that Kind) IsValid() bool {
	switch that {
	case KindVampire, KindWerewolf, KindGhost:
		return true
	default:
		return false
	}
}

// ParseKind converts a wire value into a Kind.
func ParseKind(value string) (Kind, error) {
	kind := Kind(value)
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownCreatureKind, value)
	}

	return kind, nil
}

// Creature is a monster on the board. It has no identity beyond its owner, kind and cell.
type Creature struct {
	Owner string `json:"owner"`
	Kind  Kind   `json:"kind"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.X, that.Y)
}
