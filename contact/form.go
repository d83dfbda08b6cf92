// Package contact implements the contact form: its field state, the
// Idle/Submitting state machine, and the senders that deliver a message to
// a form backend.
package contact

import (
	"net/mail"
	"strings"
)

// Field names a form input. The values double as HTML input names.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// FormState is the text the visitor has typed.
type FormState struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Get returns the value of field.
func (f FormState) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	}
	return ""
}

func (f *FormState) set(field Field, value string) bool {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	default:
		return false
	}
	return true
}

// Empty reports whether every field is blank.
func (f FormState) Empty() bool {
	return f.Name == "" && f.Email == "" && f.Subject == "" && f.Message == ""
}

// Validate checks that every field is filled in and that the email
// address parses. It returns a *ValidationError listing each bad field.
func (f FormState) Validate() error {
	var verr ValidationError
	for _, field := range Fields {
		if strings.TrimSpace(f.Get(field)) == "" {
			verr.add(field, "This field is required.")
		}
	}
	if email := strings.TrimSpace(f.Email); email != "" && !validEmail(email) {
		verr.add(FieldEmail, "Please enter a valid email address.")
	}
	if len(verr.Problems) > 0 {
		return &verr
	}
	return nil
}

// message converts the form into the payload handed to a Sender.
func (f FormState) message() Message {
	return Message{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// validEmail accepts a bare address only; display-name forms such as
// "A <a@b.com>" are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && at < len(s)-1
}
