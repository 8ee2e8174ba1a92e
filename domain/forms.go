package domain

import (
	"hotel-admin/domain/form"
)

type FormKind string

const (
	GuestAssignment   FormKind = "guest_assignment"
	RoomConfiguration FormKind = "room_configuration"
	OTPVerification   FormKind = "otp_verification"
)

// DefaultFields pairs a derived list field with the field whose value must belong to it.
var DefaultFields = map[form.Field]form.Field{
	FieldSupportedLanguages: FieldDefaultLanguage,
}

// Form is one form instance: its field state and its submission status.
// A Form must not be copied after first use.
type Form struct {
	Kind  FormKind
	State *form.State
	// OnError receives a human-readable message when a submission fails.
	OnError func(message string)

	tracker form.Tracker
}

func newForm(kind FormKind, state *form.State) *Form {
	return &Form{Kind: kind, State: state}
}

func (f *Form) Set(field form.Field, raw string) {
	f.State.Set(field, raw)
}

func (f *Form) Tracker() *form.Tracker {
	return &f.tracker
}

func (f *Form) Status() form.Status {
	return f.tracker.Status()
}

// InFlight reports whether the submit control should be disabled.
func (f *Form) InFlight() bool {
	return f.tracker.Status() == form.Submitting
}

func (f *Form) ReportError(message string) {
	if f.OnError != nil {
		f.OnError(message)
	}
}
