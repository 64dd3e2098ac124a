// Package cart holds the in-memory cart shared by every screen of the
// storefront for the lifetime of the process.
package cart

import (
	"sync"

	"coffeesaf/internal/domain"
	"coffeesaf/internal/watch"
)

// Store is an ordered collection of cart lines. Adding the same item twice
// appends two lines; there is no quantity merging. All methods are safe for
// concurrent use and every mutation is published to watchers before the
// mutating call returns.
type Store struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	changes *watch.Broadcaster
}

func NewStore() *Store {
	return &Store{changes: watch.NewBroadcaster()}
}

// Add appends line to the end of the cart.
func (s *Store) Add(line domain.CartLine) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	s.changes.Notify()
}

// Remove deletes the first line structurally equal to line. Removing a line
// that is not in the cart is a no-op.
func (s *Store) Remove(line domain.CartLine) {
	s.mu.Lock()
	removed := false
	for i := range s.lines {
		if s.lines[i].Equal(line) {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.changes.Notify()
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
	s.changes.Notify()
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Count returns how many lines reference the catalog item with the given id.
// Grid views use it for per-item badge counts.
func (s *Store) Count(coffeeID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		if l.Item.ID == coffeeID {
			n++
		}
	}
	return n
}

// Total sums the chosen price of every line. A line whose price string does
// not parse contributes zero.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += domain.ParsePrice(l.ChosenPrice)
	}
	return total
}

// Watch subscribes to cart mutations.
func (s *Store) Watch() (<-chan struct{}, func()) {
	return s.changes.Subscribe()
}
