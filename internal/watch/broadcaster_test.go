package watch

import (
	"testing"
	"time"
)

func TestNotifyWakesSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Notify()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("subscriber not notified")
	}
}

func TestNotifyCoalescesWhenUndrained(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	// A burst while nobody is reading must not block.
	for i := 0; i < 10; i++ {
		b.Notify()
	}

	<-ch
	select {
	case <-ch:
		t.Fatal("expected at most one pending signal")
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	cancel()

	b.Notify()

	select {
	case <-ch:
		t.Fatal("cancelled subscriber still notified")
	default:
	}
}
