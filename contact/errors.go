package contact

import (
	"errors"
	"strings"
)

var (
	// ErrBusy is returned when a submit arrives while another is in flight.
	ErrBusy = errors.New("contact: a message is already being sent")
	// ErrTimeout is returned when the sender does not finish in time.
	ErrTimeout = errors.New("contact: sending timed out")
	// ErrTransport wraps any other sender failure.
	ErrTransport = errors.New("contact: message could not be delivered")
)

// FieldProblem is one invalid field and what is wrong with it.
type FieldProblem struct {
	Field   Field
	Message string
}

// ValidationError is returned when the form is incomplete or malformed.
// Problems are listed in field display order.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) add(field Field, msg string) {
	for _, p := range e.Problems {
		if p.Field == field {
			return
		}
	}
	e.Problems = append(e.Problems, FieldProblem{Field: field, Message: msg})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, string(p.Field)+": "+p.Message)
	}
	return "contact: invalid form: " + strings.Join(parts, "; ")
}

// Message returns the problem reported for field, or "".
func (e *ValidationError) Message(field Field) string {
	for _, p := range e.Problems {
		if p.Field == field {
			return p.Message
		}
	}
	return ""
}

// VisitorMessage maps a submission error to the text shown on the page.
func VisitorMessage(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return "Please fix the highlighted fields and try again."
	case errors.Is(err, ErrBusy):
		return "Your message is already on its way. Please wait a moment."
	case errors.Is(err, ErrTimeout):
		return "Sending took too long. Your message is still here, please try again."
	default:
		return "Sorry, your message could not be sent. Please try again later."
	}
}
