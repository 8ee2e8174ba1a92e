package domain

import (
	"hotel-admin/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigureRoomFromSnapshot(t *testing.T) {
	req := require.New(t)
	f := NewRoomConfigurationForm()
	f.Set(FieldRoomID, " 101 ")
	f.Set(FieldSupportedLanguages, "French, German")
	f.Set(FieldWelcomeMessage, "Bienvenue")

	cmd := ConfigureRoomFromSnapshot(f.State.Snapshot())

	req.Equal(RoomID("101"), cmd.RoomID())
	req.Equal([]string{"French", "German"}, cmd.SupportedLanguages)
	req.Equal("English", cmd.DefaultLanguage)
	req.Equal("Bienvenue", cmd.WelcomeMessage)
}

func TestGuestAssignmentForm_InitialValues(t *testing.T) {
	req := require.New(t)
	f := NewGuestAssignmentForm()

	for _, field := range f.State.Fields() {
		req.Equal("", f.State.Text(field), "field=%s", field)
	}
	req.Equal(GuestAssignment, f.Kind)
	req.False(f.InFlight())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		command any
		wantErr error
		message string
	}{
		{
			name:    "Valid guest assignment",
			command: AssignGuestCommand{Room: "101", GuestName: "Ada"},
		},
		{
			name:    "Missing room and guest",
			command: AssignGuestCommand{},
			wantErr: errors.ErrMissingField,
			message: "roomId, guestName is required",
		},
		{
			name:    "Invalid guest email",
			command: AssignGuestCommand{Room: "101", GuestName: "Ada", GuestEmail: "nope"},
			wantErr: errors.ErrInvalidInput,
			message: "guestEmail is not a valid email",
		},
		{
			name:    "Missing room on configuration",
			command: ConfigureRoomCommand{DefaultLanguage: "French"},
			wantErr: errors.ErrMissingField,
			message: "roomId is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := Validate(tt.command)
			if tt.wantErr == nil {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, tt.wantErr)
			req.Contains(err.Error(), tt.message)
		})
	}
}

func TestForm_ReportError(t *testing.T) {
	req := require.New(t)
	f := NewOTPForm()
	f.ReportError("ignored without callback")

	var got string
	f.OnError = func(message string) { got = message }
	f.ReportError("boom")

	req.Equal("boom", got)
}
