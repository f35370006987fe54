// Package gesture names the tilt gestures the board recognises and provides
// the edge-triggered latch a sensor uses to report them.
package gesture

import "sync"

type Gesture string

const (
	Down  Gesture = "down"
	Left  Gesture = "left"
	Right Gesture = "right"
	Up    Gesture = "up"
)

var order = [...]Gesture{Down, Left, Right, Up}

// Order returns the gestures in poll priority order. When several gestures
// are pending at once the earliest in this order is reported first.
func Order() []Gesture {
	gestures := make([]Gesture, len(order))
	copy(gestures, order[:])
	return gestures
}

func (g Gesture) Valid() bool {
	for _, known := range order {
		if g == known {
			return true
		}
	}
	return false
}

func (g Gesture) String() string {
	return string(g)
}

// Latch remembers which gestures happened since they were last read.
// Record and WasGesture may be called from different goroutines.
type Latch struct {
	mu   sync.Mutex
	seen map[Gesture]bool
}

func NewLatch() *Latch {
	return &Latch{seen: make(map[Gesture]bool, len(order))}
}

// Record marks g as seen. Unknown gestures are ignored.
func (l *Latch) Record(g Gesture) {
	if l == nil || !g.Valid() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seen == nil {
		l.seen = make(map[Gesture]bool, len(order))
	}
	l.seen[g] = true
}

// WasGesture reports whether g was recorded since the previous call for the
// same gesture and clears it.
func (l *Latch) WasGesture(g Gesture) bool {
	if l == nil {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.seen[g] {
		return false
	}
	delete(l.seen, g)
	return true
}
