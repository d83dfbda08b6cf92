package reveal

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Section anchors in composition order. The hero ("home") is above the fold
// and animates on load, so it starts visible.
var Sections = []string{"home", "about", "skills", "experience", "contact"}

const heroSection = "home"

// ErrUnknownSection is returned for a section name that is not on the page.
var ErrUnknownSection = errors.New("reveal: unknown section")

// KnownSection reports whether name is one of Sections.
func KnownSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

// SectionState is the visibility of one section in a page view.
type SectionState struct {
	Section string `json:"section"`
	Visible bool   `json:"visible"`
}

// Tracker holds the triggers of one page view. Sections are independent of
// each other; nothing orders their transitions.
type Tracker struct {
	ID string

	triggers map[string]*Trigger

	mu       sync.Mutex
	lastSeen time.Time
}

// NewTracker builds a tracker for a page view. onReveal, if non-nil, is
// called once per section on its first transition, including the hero.
func NewTracker(id string, threshold float64, onReveal func(section string)) *Tracker {
	t := &Tracker{
		ID:       id,
		triggers: make(map[string]*Trigger, len(Sections)),
		lastSeen: time.Now(),
	}
	for _, s := range Sections {
		tr := NewTrigger(threshold)
		if onReveal != nil {
			section := s
			tr.Subscribe(func() { onReveal(section) })
		}
		t.triggers[s] = tr
	}
	t.triggers[heroSection].Observe(1)
	return t
}

// Observe forwards an intersection ratio to the section's trigger and
// reports whether it caused the section's first transition.
func (t *Tracker) Observe(section string, ratio float64) (bool, error) {
	tr, ok := t.triggers[section]
	if !ok {
		return false, ErrUnknownSection
	}
	t.touch()
	return tr.Observe(ratio), nil
}

// Visible reports whether section has become visible in this view.
func (t *Tracker) Visible(section string) bool {
	tr, ok := t.triggers[section]
	return ok && tr.Visible()
}

// State returns every section's visibility in composition order.
func (t *Tracker) State() []SectionState {
	out := make([]SectionState, 0, len(Sections))
	for _, s := range Sections {
		out = append(out, SectionState{Section: s, Visible: t.triggers[s].Visible()})
	}
	return out
}

func (t *Tracker) touch() {
	t.mu.Lock()
	t.lastSeen = time.Now()
	t.mu.Unlock()
}

func (t *Tracker) idleSince(cutoff time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastSeen.Before(cutoff)
}

// Views keeps the trackers of live page views and drops the ones that
// have been idle longer than ttl.
type Views struct {
	mu        sync.RWMutex
	trackers  map[string]*Tracker
	ttl       time.Duration
	threshold float64
	onReveal  func(section string)
	done      chan struct{}
	closeOnce sync.Once
}

// NewViews starts a registry of page views. onReveal is passed to every
// tracker it opens.
func NewViews(ttl time.Duration, onReveal func(section string)) *Views {
	v := &Views{
		trackers:  make(map[string]*Tracker),
		ttl:       ttl,
		threshold: DefaultThreshold,
		onReveal:  onReveal,
		done:      make(chan struct{}),
	}
	go v.cleanup()
	return v
}

// Open starts tracking a new page view. When record is false (the visitor
// sent Do Not Track) the view animates normally but its reveals are not
// passed to onReveal.
func (v *Views) Open(record bool) *Tracker {
	onReveal := v.onReveal
	if !record {
		onReveal = nil
	}
	t := NewTracker(uuid.NewString(), v.threshold, onReveal)
	v.mu.Lock()
	v.trackers[t.ID] = t
	v.mu.Unlock()
	return t
}

// Get returns the tracker of a live page view.
func (v *Views) Get(id string) (*Tracker, bool) {
	v.mu.RLock()
	t, ok := v.trackers[id]
	v.mu.RUnlock()
	return t, ok
}

// Len returns the number of live page views.
func (v *Views) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.trackers)
}

// Close stops the expiry sweep.
func (v *Views) Close() {
	v.closeOnce.Do(func() { close(v.done) })
}

func (v *Views) cleanup() {
	ticker := time.NewTicker(v.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			v.sweep(time.Now().Add(-v.ttl))
		case <-v.done:
			return
		}
	}
}

func (v *Views) sweep(cutoff time.Time) {
	v.mu.Lock()
	for id, t := range v.trackers {
		if t.idleSince(cutoff) {
			delete(v.trackers, id)
		}
	}
	v.mu.Unlock()
}
