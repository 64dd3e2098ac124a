package loyalty

import (
	"testing"

	"coffeesaf/internal/domain"
)

func filledCount(cards []domain.LoyaltyCard) int {
	n := 0
	for _, c := range cards {
		if c.Filled {
			n++
		}
	}
	return n
}

func TestFreshTrackerIsUnfilled(t *testing.T) {
	tr := NewTracker()
	cards := tr.Cards()
	if len(cards) != domain.LoyaltyCardCount {
		t.Fatalf("expected %d cards, got %d", domain.LoyaltyCardCount, len(cards))
	}
	if filledCount(cards) != 0 {
		t.Fatalf("fresh tracker has %d filled cards", filledCount(cards))
	}
}

func TestAdvanceOneFillsInIndexOrder(t *testing.T) {
	tr := NewTracker()
	tr.AdvanceOne()
	tr.AdvanceOne()

	cards := tr.Cards()
	if !cards[0].Filled || !cards[1].Filled || cards[2].Filled {
		t.Fatalf("unexpected board: %+v", cards)
	}
}

func TestEighthAdvanceResetsBoard(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < domain.LoyaltyCardCount; i++ {
		tr.AdvanceOne()
	}
	if filledCount(tr.Cards()) != 0 {
		t.Fatalf("board not reset after filling all slots: %+v", tr.Cards())
	}

	// Extra advances on top never blow up and keep stamping normally.
	for i := 0; i < 20; i++ {
		tr.AdvanceOne()
	}
	if got := filledCount(tr.Cards()); got != 4 {
		t.Fatalf("after 28 total advances expected 4 filled, got %d", got)
	}
}

func TestCompletePurchaseStampsPerLine(t *testing.T) {
	tr := NewTracker()
	tr.CompletePurchase(3)
	if got := filledCount(tr.Cards()); got != 3 {
		t.Fatalf("3-line purchase filled %d slots", got)
	}
}

func TestCompletePurchaseAcrossReset(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 6; i++ {
		tr.AdvanceOne()
	}

	// Fill slot 7, fill slot 8 (board resets), stamp slot 1 of the fresh board.
	tr.CompletePurchase(3)

	cards := tr.Cards()
	if !cards[0].Filled {
		t.Fatalf("first card of the fresh board not filled: %+v", cards)
	}
	for _, c := range cards[1:] {
		if c.Filled {
			t.Fatalf("unexpected filled card after reset: %+v", cards)
		}
	}
}

func TestCompletePurchaseZeroLinesIsNoop(t *testing.T) {
	tr := NewTracker()
	tr.CompletePurchase(0)
	if filledCount(tr.Cards()) != 0 {
		t.Fatalf("zero-line purchase stamped the board: %+v", tr.Cards())
	}
}
