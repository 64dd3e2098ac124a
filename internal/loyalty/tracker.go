// Package loyalty tracks stamp progress toward a free drink on a fixed
// eight-slot board.
package loyalty

import (
	"sync"

	"coffeesaf/internal/domain"
	"coffeesaf/internal/watch"
)

// Tracker owns the loyalty board. It starts with all slots unfilled and
// lives for the whole process; the only way back to an empty board is
// filling it completely.
type Tracker struct {
	mu      sync.Mutex
	cards   []domain.LoyaltyCard
	changes *watch.Broadcaster
}

func NewTracker() *Tracker {
	t := &Tracker{changes: watch.NewBroadcaster()}
	t.cards = freshCards()
	return t
}

func freshCards() []domain.LoyaltyCard {
	cards := make([]domain.LoyaltyCard, domain.LoyaltyCardCount)
	for i := range cards {
		cards[i] = domain.LoyaltyCard{Index: i}
	}
	return cards
}

// AdvanceOne fills the first unfilled slot in index order. Filling the last
// slot resets the whole board to unfilled within the same call, so the board
// is never left full. On an already-full board (unreachable given the reset
// rule) it does nothing.
func (t *Tracker) AdvanceOne() {
	t.mu.Lock()
	t.advanceLocked()
	t.mu.Unlock()
	t.changes.Notify()
}

func (t *Tracker) advanceLocked() {
	for i := range t.cards {
		if !t.cards[i].Filled {
			t.cards[i].Filled = true
			break
		}
	}
	for _, c := range t.cards {
		if !c.Filled {
			return
		}
	}
	t.cards = freshCards()
}

// CompletePurchase stamps the board once per purchased cart line. A
// multi-line purchase can fill and reset the board more than once inside a
// single call; every unit earns one stamp.
func (t *Tracker) CompletePurchase(lineCount int) {
	t.mu.Lock()
	for i := 0; i < lineCount; i++ {
		t.advanceLocked()
	}
	t.mu.Unlock()
	t.changes.Notify()
}

// Cards returns a copy of the board state.
func (t *Tracker) Cards() []domain.LoyaltyCard {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.LoyaltyCard, len(t.cards))
	copy(out, t.cards)
	return out
}

// Watch subscribes to board changes.
func (t *Tracker) Watch() (<-chan struct{}, func()) {
	return t.changes.Subscribe()
}
