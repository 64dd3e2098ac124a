package cart

import (
	"testing"
	"time"

	"coffeesaf/internal/domain"
)

func line(id int64, price string) domain.CartLine {
	return domain.CartLine{
		Item:        domain.CoffeeItem{ID: id, Name: "Капучино", Type: "Стандарт"},
		Size:        domain.SizeM,
		ChosenPrice: price,
	}
}

func TestAddRemoveLength(t *testing.T) {
	s := NewStore()

	s.Add(line(1, "200 ₽"))
	s.Add(line(1, "200 ₽"))
	s.Add(line(2, "150 ₽"))
	if s.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", s.Len())
	}

	s.Remove(line(1, "200 ₽"))
	if s.Len() != 2 {
		t.Fatalf("expected 2 lines after remove, got %d", s.Len())
	}

	// Removing something that is not in the cart changes nothing.
	s.Remove(line(99, "500 ₽"))
	if s.Len() != 2 {
		t.Fatalf("remove of absent line changed length: %d", s.Len())
	}
}

func TestRemoveMatchesFirstEqualLine(t *testing.T) {
	s := NewStore()
	first := line(1, "200 ₽")
	second := line(1, "250 ₽")
	s.Add(first)
	s.Add(second)

	s.Remove(line(1, "250 ₽"))

	lines := s.Lines()
	if len(lines) != 1 || lines[0].ChosenPrice != "200 ₽" {
		t.Fatalf("expected only the 200 ₽ line to remain, got %+v", lines)
	}
}

func TestTotalSkipsUnparseablePrices(t *testing.T) {
	s := NewStore()
	s.Add(line(1, "200 ₽"))
	s.Add(line(2, "150 ₽"))
	s.Add(line(3, "not-a-price"))

	if got := s.Total(); got != 350 {
		t.Fatalf("total = %d, want 350", got)
	}
}

func TestCountByItem(t *testing.T) {
	s := NewStore()
	s.Add(line(1, "200 ₽"))
	s.Add(line(1, "200 ₽"))
	s.Add(line(2, "150 ₽"))

	if got := s.Count(1); got != 2 {
		t.Fatalf("count(1) = %d, want 2", got)
	}
	if got := s.Count(3); got != 0 {
		t.Fatalf("count(3) = %d, want 0", got)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewStore()
	s.Add(line(1, "200 ₽"))
	s.Clear()
	if s.Len() != 0 || s.Total() != 0 {
		t.Fatalf("cart not empty after clear: len=%d total=%d", s.Len(), s.Total())
	}
}

func TestWatchSeesEveryMutation(t *testing.T) {
	s := NewStore()
	changes, cancel := s.Watch()
	defer cancel()

	s.Add(line(1, "200 ₽"))
	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("no notification after Add")
	}

	s.Clear()
	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("no notification after Clear")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(line(1, "200 ₽"))

	lines := s.Lines()
	lines[0].ChosenPrice = "999 ₽"

	if s.Lines()[0].ChosenPrice != "200 ₽" {
		t.Fatal("mutating the snapshot leaked into the store")
	}
}
