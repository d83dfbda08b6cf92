package contact

import (
	"sync"
	"time"
)

// Desk hands out one Controller per visitor and forgets visitors whose
// form has been idle for longer than ttl.
type Desk struct {
	sender  Sender
	timeout time.Duration
	ttl     time.Duration

	mu          sync.Mutex
	controllers map[string]*Controller
	done        chan struct{}
	closeOnce   sync.Once
}

// NewDesk creates a desk whose controllers deliver through sender.
func NewDesk(sender Sender, timeout, ttl time.Duration) *Desk {
	d := &Desk{
		sender:      sender,
		timeout:     timeout,
		ttl:         ttl,
		controllers: make(map[string]*Controller),
		done:        make(chan struct{}),
	}
	go d.cleanup()
	return d
}

// Controller returns the visitor's controller, creating an empty one on
// first use.
func (d *Desk) Controller(visitorID string) *Controller {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.controllers[visitorID]
	if !ok {
		c = NewController(d.sender, d.timeout)
		d.controllers[visitorID] = c
	}
	return c
}

// Len returns the number of visitors with a live form.
func (d *Desk) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.controllers)
}

// Close stops the expiry sweep.
func (d *Desk) Close() {
	d.closeOnce.Do(func() { close(d.done) })
}

func (d *Desk) cleanup() {
	ticker := time.NewTicker(d.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			d.sweep(time.Now().Add(-d.ttl))
		case <-d.done:
			return
		}
	}
}

// sweep drops idle controllers; a controller mid-submit is always kept.
func (d *Desk) sweep(cutoff time.Time) {
	d.mu.Lock()
	for id, c := range d.controllers {
		if c.idleSince(cutoff) {
			delete(d.controllers, id)
		}
	}
	d.mu.Unlock()
}
