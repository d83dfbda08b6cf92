package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// State is the phase of a form.
type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 10 * time.Second

// Notice is the confirmation toast shown after a successful send.
type Notice struct {
	Title string
	Body  string
}

// SuccessNotice is shown once per delivered message.
var SuccessNotice = Notice{
	Title: "Message Sent Successfully! 🎉",
	Body:  "Thank you for reaching out. I'll get back to you within 24 hours.",
}

// Outcome is the result of a submit. On success Notice is set and Form is
// empty. On failure Err is set and Form still holds what the visitor typed.
type Outcome struct {
	Notice *Notice
	Err    error
	Form   FormState
}

// OK reports whether the message was delivered.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Controller owns one visitor's form. Fields can be edited while Idle; a
// submit moves it to Submitting until the sender returns, and a second
// submit in that window is rejected with ErrBusy.
type Controller struct {
	sender  Sender
	timeout time.Duration

	mu         sync.Mutex
	form       FormState
	state      State
	lastActive time.Time
}

// NewController creates an idle controller with empty fields.
func NewController(sender Sender, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Controller{
		sender:     sender,
		timeout:    timeout,
		lastActive: time.Now(),
	}
}

// Set updates one field. Edits are ignored while a submit is in flight,
// since the form is about to be reset.
func (c *Controller) Set(field Field, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = time.Now()
	if c.state != Idle {
		return false
	}
	return c.form.set(field, value)
}

// Fill replaces all four fields at once, as a posted form does.
func (c *Controller) Fill(f FormState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = time.Now()
	if c.state != Idle {
		return false
	}
	c.form = f
	return true
}

// Form returns a copy of the current field values.
func (c *Controller) Form() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit validates the form and hands it to the sender. Validation
// failures never enter Submitting.
func (c *Controller) Submit(ctx context.Context) Outcome {
	c.mu.Lock()
	c.lastActive = time.Now()
	if c.state == Submitting {
		form := c.form
		c.mu.Unlock()
		return Outcome{Err: ErrBusy, Form: form}
	}
	return c.submitLocked(ctx)
}

// SubmitForm replaces the fields with f and submits them under one lock, so
// overlapping posts cannot deliver each other's fields. A post that arrives
// while another is in flight gets ErrBusy with its own values back.
func (c *Controller) SubmitForm(ctx context.Context, f FormState) Outcome {
	c.mu.Lock()
	c.lastActive = time.Now()
	if c.state == Submitting {
		c.mu.Unlock()
		return Outcome{Err: ErrBusy, Form: f}
	}
	c.form = f
	return c.submitLocked(ctx)
}

// submitLocked runs a submit from Idle. c.mu must be held; it is released
// before the sender is called.
func (c *Controller) submitLocked(ctx context.Context) Outcome {
	if err := c.form.Validate(); err != nil {
		form := c.form
		c.mu.Unlock()
		return Outcome{Err: err, Form: form}
	}
	c.state = Submitting
	msg := c.form.message()
	c.mu.Unlock()

	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	err := classify(c.sender.Send(sendCtx, msg), c.timeout)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Idle
	c.lastActive = time.Now()
	if err != nil {
		return Outcome{Err: err, Form: c.form}
	}
	c.form = FormState{}
	notice := SuccessNotice
	return Outcome{Notice: &notice}
}

func (c *Controller) idleSince(cutoff time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Idle && c.lastActive.Before(cutoff)
}

func classify(err error, timeout time.Duration) error {
	if err == nil {
		return nil
	}
	var te interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &te) && te.Timeout()) {
		return fmt.Errorf("%w after %s: %w", ErrTimeout, timeout, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
