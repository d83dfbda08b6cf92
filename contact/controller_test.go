package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

var filled = FormState{Name: "A", Email: "a@b.com", Subject: "S", Message: "M"}

func TestSubmitSuccessClearsFieldsAndNotifiesOnce(t *testing.T) {
	var sent []Message
	c := NewController(SenderFunc(func(ctx context.Context, m Message) error {
		sent = append(sent, m)
		return nil
	}), time.Second)
	c.Fill(filled)

	out := c.Submit(context.Background())
	if !out.OK() {
		t.Fatalf("Submit failed: %v", out.Err)
	}
	if out.Notice == nil || *out.Notice != SuccessNotice {
		t.Fatalf("Notice = %+v, want success notice", out.Notice)
	}
	if !out.Form.Empty() || !c.Form().Empty() {
		t.Errorf("fields should be cleared, got %+v", c.Form())
	}
	if c.State() != Idle {
		t.Errorf("State = %v, want idle", c.State())
	}
	if len(sent) != 1 {
		t.Fatalf("sender called %d times, want 1", len(sent))
	}
	want := Message{Name: "A", Email: "a@b.com", Subject: "S", Message: "M"}
	if sent[0] != want {
		t.Errorf("sent = %+v, want %+v", sent[0], want)
	}
}

func TestSubmitEmptyFieldRejectedBeforeSubmitting(t *testing.T) {
	for _, field := range Fields {
		t.Run(string(field), func(t *testing.T) {
			var called bool
			c := NewController(SenderFunc(func(context.Context, Message) error {
				called = true
				return nil
			}), time.Second)
			c.Fill(filled)
			c.Set(field, "")

			out := c.Submit(context.Background())
			var verr *ValidationError
			if !errors.As(out.Err, &verr) {
				t.Fatalf("expected ValidationError, got %v", out.Err)
			}
			if verr.Message(field) == "" {
				t.Errorf("expected a problem for %s, got %v", field, verr)
			}
			if called {
				t.Error("sender must not be called for an invalid form")
			}
			if out.Form.Get(FieldSubject) != "S" && field != FieldSubject {
				t.Error("fields should be kept after a validation failure")
			}
		})
	}
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	c := NewController(SimulatedSender{}, time.Second)
	for _, email := range []string{"not-an-email", "a@", "A <a@b.com>", "@b.com"} {
		c.Fill(FormState{Name: "A", Email: email, Subject: "S", Message: "M"})
		out := c.Submit(context.Background())
		var verr *ValidationError
		if !errors.As(out.Err, &verr) || verr.Message(FieldEmail) == "" {
			t.Errorf("email %q: expected email validation error, got %v", email, out.Err)
		}
	}
}

func TestSubmitWhileSubmittingIsBusy(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	c := NewController(SenderFunc(func(ctx context.Context, m Message) error {
		close(started)
		<-release
		return nil
	}), time.Second)
	c.Fill(filled)

	done := make(chan Outcome)
	go func() { done <- c.Submit(context.Background()) }()
	<-started

	if c.State() != Submitting {
		t.Fatalf("State = %v, want submitting", c.State())
	}
	second := c.Submit(context.Background())
	if !errors.Is(second.Err, ErrBusy) {
		t.Fatalf("second submit err = %v, want ErrBusy", second.Err)
	}
	if c.Set(FieldName, "B") {
		t.Error("edits should be ignored while submitting")
	}

	close(release)
	first := <-done
	if !first.OK() {
		t.Fatalf("first submit failed: %v", first.Err)
	}
	if c.State() != Idle {
		t.Errorf("State = %v, want idle", c.State())
	}
}

func TestSubmitTimeoutKeepsFields(t *testing.T) {
	c := NewController(SimulatedSender{Delay: time.Second}, 20*time.Millisecond)
	c.Fill(filled)

	out := c.Submit(context.Background())
	if !errors.Is(out.Err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", out.Err)
	}
	if out.Notice != nil {
		t.Error("no notice on failure")
	}
	if c.Form() != filled {
		t.Errorf("fields should be kept for retry, got %+v", c.Form())
	}
	if c.State() != Idle {
		t.Errorf("State = %v, want idle so the visitor can retry", c.State())
	}
}

func TestSubmitTransportErrorThenRetry(t *testing.T) {
	var attempts int
	c := NewController(SenderFunc(func(context.Context, Message) error {
		attempts++
		if attempts == 1 {
			return errors.New("connection refused")
		}
		return nil
	}), time.Second)
	c.Fill(filled)

	out := c.Submit(context.Background())
	if !errors.Is(out.Err, ErrTransport) {
		t.Fatalf("err = %v, want ErrTransport", out.Err)
	}
	if !strings.Contains(out.Err.Error(), "connection refused") {
		t.Errorf("transport error should wrap the cause: %v", out.Err)
	}

	out = c.Submit(context.Background())
	if !out.OK() {
		t.Fatalf("retry failed: %v", out.Err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestVisitorMessagesAreDistinct(t *testing.T) {
	errs := []error{
		&ValidationError{Problems: []FieldProblem{{Field: FieldName, Message: "x"}}},
		ErrBusy,
		ErrTimeout,
		ErrTransport,
	}
	seen := map[string]bool{}
	for _, err := range errs {
		msg := VisitorMessage(err)
		if msg == "" {
			t.Errorf("no message for %v", err)
		}
		if seen[msg] {
			t.Errorf("duplicate message %q", msg)
		}
		seen[msg] = true
	}
	if VisitorMessage(nil) != "" {
		t.Error("nil error should have no message")
	}
}

func TestSimulatedSenderHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := SimulatedSender{Delay: time.Hour}.Send(ctx, Message{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestWebhookSender(t *testing.T) {
	var got Message
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got.Subject == "fail" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewWebhookSender(srv.URL, time.Second)
	msg := Message{Name: "A", Email: "a@b.com", Subject: "S", Message: "M"}
	if err := s.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got != msg {
		t.Errorf("backend received %+v, want %+v", got, msg)
	}

	msg.Subject = "fail"
	err := s.Send(context.Background(), msg)
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Errorf("expected 502 error, got %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("backend calls = %d, want 2", calls.Load())
	}
}

func TestDeskControllerPerVisitor(t *testing.T) {
	d := NewDesk(SimulatedSender{}, time.Second, time.Hour)
	defer d.Close()

	a := d.Controller("visitor-a")
	if d.Controller("visitor-a") != a {
		t.Error("same visitor should get the same controller")
	}
	b := d.Controller("visitor-b")
	if a == b {
		t.Error("different visitors should get different controllers")
	}
	a.Set(FieldName, "A")
	if b.Form().Name != "" {
		t.Error("visitors must not share form state")
	}

	cutoff := time.Now().Add(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	b.Set(FieldName, "B")
	d.sweep(cutoff)
	if d.Len() != 1 {
		t.Errorf("Len after sweep = %d, want 1", d.Len())
	}
}

func TestSubmitFormOverlappingPosts(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var got []Message
	c := NewController(SenderFunc(func(ctx context.Context, m Message) error {
		got = append(got, m)
		close(started)
		<-release
		return nil
	}), time.Second)

	first := FormState{Name: "A", Email: "a@b.com", Subject: "S", Message: "first"}
	second := FormState{Name: "B", Email: "b@b.com", Subject: "S", Message: "second"}

	done := make(chan Outcome)
	go func() { done <- c.SubmitForm(context.Background(), first) }()
	<-started

	busy := c.SubmitForm(context.Background(), second)
	if !errors.Is(busy.Err, ErrBusy) {
		t.Fatalf("overlapping submit err = %v, want ErrBusy", busy.Err)
	}
	if busy.Form != second {
		t.Errorf("busy outcome should carry the post's own fields, got %+v", busy.Form)
	}

	close(release)
	if out := <-done; !out.OK() {
		t.Fatalf("first submit failed: %v", out.Err)
	}
	if len(got) != 1 || got[0].Message != "first" {
		t.Errorf("sent %+v, want only the first message", got)
	}
	if !c.Form().Empty() {
		t.Errorf("fields should be cleared, got %+v", c.Form())
	}
}

func TestSubmitFormValidates(t *testing.T) {
	var calls int32
	c := NewController(SenderFunc(func(ctx context.Context, m Message) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}), time.Second)

	out := c.SubmitForm(context.Background(), FormState{Name: "A", Email: "nope", Subject: "S", Message: "M"})
	var verr *ValidationError
	if !errors.As(out.Err, &verr) {
		t.Fatalf("err = %v, want validation error", out.Err)
	}
	if out.Form.Email != "nope" || c.Form().Email != "nope" {
		t.Error("fields should be kept after a validation failure")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("invalid form must not be sent")
	}
}
