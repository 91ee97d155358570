package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	h.Notify()

	for _, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		default:
			t.Fatal("subscriber did not receive notification")
		}
	}
}

func TestNotifyCoalescesAndNeverBlocks(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	// Multiple notifications without a read must not block the notifier.
	h.Notify()
	h.Notify()
	h.Notify()

	<-ch
	select {
	case <-ch:
		t.Fatal("expected pending notifications to coalesce into one")
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	cancel()

	h.Notify() // Must not panic on the removed subscriber.

	_, open := <-ch
	assert.False(t, open, "channel closed after cancel")

	// Cancel is idempotent.
	cancel()
}

func TestCloseDisconnectsEverybody(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Close()
	_, open := <-ch
	require.False(t, open)

	// Subscribing after close yields an already-closed channel.
	late, _ := h.Subscribe()
	_, open = <-late
	assert.False(t, open)
}
