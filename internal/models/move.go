package models

import "fmt"

// Move is one of the three duel moves. The byte values are part of the
// commitment encoding and must never be reordered.
type Move uint8

const (
	// MoveSword beats Shield
	MoveSword Move = 0

	// MoveShield beats Magic
	MoveShield Move = 1

	// MoveMagic beats Sword
	MoveMagic Move = 2
)

// Valid reports whether the move is one of the three known moves
func (m Move) Valid() bool {
	return m <= MoveMagic
}

// String returns the display name of the move
func (m Move) String() string {
	switch m {
	case MoveSword:
		return "Sword"
	case MoveShield:
		return "Shield"
	case MoveMagic:
		return "Magic"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// ParseMove converts a display name back into a Move
func ParseMove(s string) (Move, error) {
	switch s {
	case "Sword", "sword":
		return MoveSword, nil
	case "Shield", "shield":
		return MoveShield, nil
	case "Magic", "magic":
		return MoveMagic, nil
	default:
		return 0, fmt.Errorf("unknown move %q", s)
	}
}
