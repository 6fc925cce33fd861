// SPDX-License-Identifier: MIT

package loot

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/rpgsack/item"
	"github.com/katalvlaran/rpgsack/knapsack"
	"github.com/katalvlaran/rpgsack/persona"
)

// Session carries the current backpack across reconciliation cycles.
// It is safe for concurrent use; cycles are serialized.
type Session struct {
	mu       sync.Mutex
	rec      *Reconciler
	src      Source
	persona  persona.Persona
	capacity int
	backpack []item.ScoredItem
	cycles   int
}

// NewSession fits start into capacity for p and returns a session holding
// the result as its backpack. start may be empty.
func NewSession(rec *Reconciler, src Source, p persona.Persona, capacity int, start []item.Item) (*Session, error) {
	if rec == nil {
		rec = NewReconciler()
	}
	res, err := rec.Reconcile(nil, start, p, capacity)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Session{
		rec:      rec,
		src:      src,
		persona:  p,
		capacity: capacity,
		backpack: res.Kept,
	}, nil
}

// Resume restores a session from a previously kept backpack without
// re-optimizing it.
func Resume(rec *Reconciler, src Source, p persona.Persona, capacity int, backpack []item.ScoredItem) (*Session, error) {
	if rec == nil {
		rec = NewReconciler()
	}
	if capacity < 0 {
		return nil, fmt.Errorf("resume session: %w: got %d", knapsack.ErrInvalidCapacity, capacity)
	}
	return &Session{
		rec:      rec,
		src:      src,
		persona:  p,
		capacity: capacity,
		backpack: append([]item.ScoredItem(nil), backpack...),
	}, nil
}

// Step draws quantity items from the source, reconciles them with the
// backpack and, on success, makes the kept items the new backpack.
// On error the backpack is unchanged.
func (s *Session) Step(quantity int) (Result, error) {
	if s.src == nil {
		return Result{}, fmt.Errorf("session step: %w", ErrEmptyCatalog)
	}
	found, err := s.src.Draw(quantity)
	if err != nil {
		return Result{}, fmt.Errorf("session step: %w", err)
	}
	return s.Add(found)
}

// Add reconciles an explicit loot list with the backpack.
func (s *Session) Add(found []item.Item) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.rec.Reconcile(s.backpack, found, s.persona, s.capacity)
	if err != nil {
		return Result{}, err
	}
	s.backpack = res.Kept
	s.cycles++
	return res, nil
}

// Backpack returns a copy of the current kept items.
func (s *Session) Backpack() []item.ScoredItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]item.ScoredItem(nil), s.backpack...)
}

// Persona returns the active persona.
func (s *Session) Persona() persona.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

// SetPersona switches the persona used to score future loot.
func (s *Session) SetPersona(p persona.Persona) {
	s.mu.Lock()
	s.persona = p
	s.mu.Unlock()
}

// Capacity returns the weight budget.
func (s *Session) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capacity
}

// Cycles counts successful Step/Add calls.
func (s *Session) Cycles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycles
}
