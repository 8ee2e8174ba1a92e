package domain

import (
	"hotel-admin/domain/form"
	"strings"
)

const (
	FieldGuestName  form.Field = "guest_name"
	FieldGuestEmail form.Field = "guest_email"
	FieldCheckIn    form.Field = "check_in"
	FieldCheckOut   form.Field = "check_out"
	FieldMessage    form.Field = "message"
)

func NewGuestAssignmentForm() *Form {
	return newForm(GuestAssignment, form.NewState(
		form.TextField(FieldRoomID, ""),
		form.TextField(FieldGuestName, ""),
		form.TextField(FieldGuestEmail, ""),
		form.TextField(FieldCheckIn, ""),
		form.TextField(FieldCheckOut, ""),
		form.TextField(FieldMessage, ""),
	))
}

// AssignGuestCommand books a guest into a room. Dates are passed through as typed.
type AssignGuestCommand struct {
	Room       string `json:"roomId" validate:"required"`
	GuestName  string `json:"guestName" validate:"required"`
	GuestEmail string `json:"guestEmail,omitempty" validate:"omitempty,email"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (c AssignGuestCommand) RoomID() RoomID {
	return RoomID(c.Room)
}

func AssignGuestFromSnapshot(snap form.Snapshot) AssignGuestCommand {
	return AssignGuestCommand{
		Room:       strings.TrimSpace(snap.Text(FieldRoomID)),
		GuestName:  strings.TrimSpace(snap.Text(FieldGuestName)),
		GuestEmail: strings.TrimSpace(snap.Text(FieldGuestEmail)),
		CheckIn:    strings.TrimSpace(snap.Text(FieldCheckIn)),
		CheckOut:   strings.TrimSpace(snap.Text(FieldCheckOut)),
		Message:    snap.Text(FieldMessage),
	}
}
