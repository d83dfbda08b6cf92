// Package reveal models the one-time "section became visible" transition
// that drives entrance animations, and counts those transitions.
//
// The browser reports intersection ratios for each section of a page view;
// every section owns a Trigger that latches the first time the ratio
// crosses the threshold and never unlatches for the life of the view.
package reveal

import "sync"

// DefaultThreshold is the fraction of a section that must be on screen
// before it counts as visible.
const DefaultThreshold = 0.1

// Trigger is a trigger-once visibility observer for a single section.
type Trigger struct {
	mu        sync.Mutex
	threshold float64
	visible   bool
	subs      []func()
}

// NewTrigger returns a Trigger that latches once an observed ratio reaches
// threshold. A non-positive threshold latches on any intersection.
func NewTrigger(threshold float64) *Trigger {
	return &Trigger{threshold: threshold}
}

// Observe feeds an intersection ratio (0 = off screen, 1 = fully on screen).
// It reports whether this call caused the transition to visible.
func (t *Trigger) Observe(ratio float64) bool {
	if ratio <= 0 || ratio < t.threshold {
		return false
	}
	t.mu.Lock()
	if t.visible {
		t.mu.Unlock()
		return false
	}
	t.visible = true
	subs := t.subs
	t.subs = nil
	t.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return true
}

// Visible reports whether the section has ever become visible.
func (t *Trigger) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Subscribe registers fn to run once when the trigger latches. If it has
// already latched, fn runs immediately.
func (t *Trigger) Subscribe(fn func()) {
	t.mu.Lock()
	if t.visible {
		t.mu.Unlock()
		fn()
		return
	}
	t.subs = append(t.subs, fn)
	t.mu.Unlock()
}
