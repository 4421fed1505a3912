package entity

import (
	"errors"
	"fmt"
	"iter"
)

var ErrIndexOutOfRange = errors.New("entity: roster index out of range")

// Roster owns the entities of one kind. Its size is fixed at construction.
type Roster struct {
	kind  Kind
	items []*Entity
}

// NewRoster takes ownership of items, which must all be of the given kind.
func NewRoster(kind Kind, items ...*Entity) (*Roster, error) {
	owned := make([]*Entity, 0, len(items))
	for i, e := range items {
		if e == nil {
			return nil, fmt.Errorf("entity: roster %s: nil entity at %d", kind, i)
		}
		if e.kind != kind {
			return nil, fmt.Errorf("entity: roster %s: entity %d is a %s", kind, i, e.kind)
		}
		owned = append(owned, e)
	}
	return &Roster{kind: kind, items: owned}, nil
}

func (r *Roster) Kind() Kind { return r.kind }

func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

// At returns the i-th entity, active or not.
func (r *Roster) At(i int) (*Entity, error) {
	if r == nil || i < 0 || i >= len(r.items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, r.Len())
	}
	return r.items[i], nil
}

// All yields every entity with its index.
func (r *Roster) All() iter.Seq2[int, *Entity] {
	return func(yield func(int, *Entity) bool) {
		if r == nil {
			return
		}
		for i, e := range r.items {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Active yields only entities that have not been defeated.
func (r *Roster) Active() iter.Seq2[int, *Entity] {
	return func(yield func(int, *Entity) bool) {
		if r == nil {
			return
		}
		for i, e := range r.items {
			if !e.IsActive() {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

func (r *Roster) ActiveCount() int {
	n := 0
	for range r.Active() {
		n++
	}
	return n
}
