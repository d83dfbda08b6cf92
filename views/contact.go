package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio/contact"
)

var formFields = []struct {
	Field       contact.Field
	Label       string
	Type        string
	Placeholder string
}{
	{contact.FieldName, "Name", "text", "Your full name"},
	{contact.FieldEmail, "Email", "email", "your.email@example.com"},
	{contact.FieldSubject, "Subject", "text", "Project inquiry, collaboration, etc."},
	{contact.FieldMessage, "Message", "textarea", "Tell me about your project, timeline, budget, and any specific requirements..."},
}

// ContactForm renders the form partial. It is swapped in place after an
// asynchronous submit, so it carries its own notice and error slots.
func ContactForm(f FormView) templ.Component {
	return component(func(hw *writer) {
		hw.raw(`<div id="contact-form-slot">`)
		if f.Notice != nil {
			hw.child(Toast(*f.Notice))
		}
		hw.raw(`<form id="contact-form" class="contact-form" method="post" action="/contact/" data-async novalidate`)
		if f.Submitting {
			hw.raw(` aria-busy="true"`)
		}
		hw.raw(`>`)
		hw.raw(`<input type="hidden" name="_csrf"`)
		hw.attr("value", f.CSRFToken)
		hw.raw(`>`)
		if f.Error != "" {
			hw.raw(`<div class="form-error" role="alert">`)
			hw.text(f.Error)
			hw.raw(`</div>`)
		}
		for _, ff := range formFields {
			formField(hw, f, ff.Field, ff.Label, ff.Type, ff.Placeholder)
		}
		hw.raw(`<button type="submit" class="button button-primary button-block"`)
		if f.Submitting {
			hw.raw(` disabled><span class="spinner" aria-hidden="true"></span> Sending...`)
		} else {
			hw.raw(`><span aria-hidden="true">➤</span> Send Message`)
		}
		hw.raw(`</button></form></div>`)
	})
}

func formField(hw *writer, f FormView, field contact.Field, label, typ, placeholder string) {
	id := "contact-" + string(field)
	msg := f.FieldError(field)
	hw.raw(`<div class="field`)
	if msg != "" {
		hw.raw(` field-invalid`)
	}
	hw.raw(`"><label`)
	hw.attr("for", id)
	hw.raw(`>`)
	hw.text(label)
	hw.raw(` *</label>`)

	value := f.Values.Get(field)
	if typ == "textarea" {
		hw.raw(`<textarea rows="6" required`)
		hw.attr("id", id)
		hw.attr("name", string(field))
		hw.attr("placeholder", placeholder)
		if msg != "" {
			hw.raw(` aria-invalid="true"`)
		}
		hw.raw(`>`)
		hw.text(value)
		hw.raw(`</textarea>`)
	} else {
		hw.raw(`<input required`)
		hw.attr("id", id)
		hw.attr("name", string(field))
		hw.attr("type", typ)
		hw.attr("placeholder", placeholder)
		hw.attr("value", value)
		if msg != "" {
			hw.raw(` aria-invalid="true"`)
		}
		hw.raw(`>`)
	}
	if msg != "" {
		hw.raw(`<p class="field-message">`)
		hw.text(msg)
		hw.raw(`</p>`)
	}
	hw.raw(`</div>`)
}

// Toast renders a single confirmation notice.
func Toast(n contact.Notice) templ.Component {
	return component(func(hw *writer) {
		hw.raw(`<div class="toast" role="status" aria-live="polite"><p class="toast-title">`)
		hw.text(n.Title)
		hw.raw(`</p><p class="toast-body">`)
		hw.text(n.Body)
		hw.raw(`</p></div>`)
	})
}
