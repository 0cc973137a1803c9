// Package ordering validates sibling rearrangements before they touch the store.
//
// Siblings (chapters of one rule book, pages of one chapter) carry a dense,
// zero-based position. A reorder request is accepted only when it describes a
// complete new arrangement; partial or inconsistent requests are rejected as a
// whole so no write is ever issued for them.
package ordering

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmpty           = errors.New("ordering: empty arrangement")
	ErrUnknownSibling  = errors.New("ordering: unknown sibling")
	ErrDuplicateID     = errors.New("ordering: duplicate sibling id")
	ErrIncomplete      = errors.New("ordering: arrangement does not cover every sibling")
	ErrInvalidPosition = errors.New("ordering: positions are not 0..n-1")
)

// Move assigns a target position to one sibling.
type Move struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// UnknownSiblingError carries the offending id.
type UnknownSiblingError struct{ ID string }

func (e *UnknownSiblingError) Error() string {
	return fmt.Sprintf("ordering: unknown sibling %q", e.ID)
}

func (e *UnknownSiblingError) Unwrap() error { return ErrUnknownSibling }

// Plan checks moves against the current sibling ids and returns the moves
// sorted by target position.
func Plan(siblings []string, moves []Move) ([]Move, error) {
	if len(moves) == 0 {
		return nil, ErrEmpty
	}
	known := make(map[string]struct{}, len(siblings))
	for _, id := range siblings {
		known[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(moves))
	for _, m := range moves {
		if _, ok := known[m.ID]; !ok {
			return nil, &UnknownSiblingError{ID: m.ID}
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	if len(moves) != len(known) {
		return nil, ErrIncomplete
	}

	out := make([]Move, len(moves))
	copy(out, moves)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	for i, m := range out {
		if m.Position != i {
			return nil, ErrInvalidPosition
		}
	}
	return out, nil
}

// Dense reports whether positions are exactly 0..n-1 with no duplicates.
func Dense(positions []int) bool {
	seen := make([]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(positions) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
