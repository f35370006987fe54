package gesture

import (
	"sync"
	"testing"
)

func TestOrderIsDownLeftRightUp(t *testing.T) {
	expected := []Gesture{Down, Left, Right, Up}
	got := Order()

	if len(got) != len(expected) {
		t.Fatalf("expected %d gestures, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected gesture %d to be %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestOrderReturnsCopy(t *testing.T) {
	got := Order()
	got[0] = Up

	if Order()[0] != Down {
		t.Fatalf("expected mutating the returned order to not affect later calls")
	}
}

func TestLatchIsEdgeTriggered(t *testing.T) {
	latch := NewLatch()

	if latch.WasGesture(Left) {
		t.Fatalf("expected empty latch to report no gesture")
	}

	latch.Record(Left)
	latch.Record(Left)

	if !latch.WasGesture(Left) {
		t.Fatalf("expected recorded gesture to be reported")
	}
	if latch.WasGesture(Left) {
		t.Fatalf("expected gesture to be consumed by the first read")
	}
}

func TestLatchKeepsOtherGesturesPending(t *testing.T) {
	latch := NewLatch()
	latch.Record(Down)
	latch.Record(Up)

	if !latch.WasGesture(Down) {
		t.Fatalf("expected down to be reported")
	}
	if !latch.WasGesture(Up) {
		t.Fatalf("expected up to stay pending after reading down")
	}
}

func TestLatchIgnoresUnknownGestures(t *testing.T) {
	latch := NewLatch()
	latch.Record(Gesture("shake"))

	if latch.WasGesture(Gesture("shake")) {
		t.Fatalf("expected unknown gesture to be ignored")
	}
}

func TestZeroLatchIsUsable(t *testing.T) {
	var latch Latch
	latch.Record(Up)

	if !latch.WasGesture(Up) {
		t.Fatalf("expected zero value latch to record gestures")
	}
}

func TestLatchConcurrentRecordAndRead(t *testing.T) {
	latch := NewLatch()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			latch.Record(Down)
		}()
		go func() {
			defer wg.Done()
			latch.WasGesture(Down)
		}()
	}
	wg.Wait()
}
