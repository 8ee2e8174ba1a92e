package main

import (
	"fmt"
	"hotel-admin/domain"
	"hotel-admin/domain/form"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

// fieldFlag binds a command line flag to a form field.
type fieldFlag struct {
	name  string
	field form.Field
	usage string
	value string
}

// bindFields registers one string flag per field on cmd.
func bindFields(cmd *cobra.Command, flags []*fieldFlag) {
	for _, f := range flags {
		cmd.Flags().StringVar(&f.value, f.name, "", f.usage)
	}
}

// fill copies the flags the user actually passed into the form, keeping the
// declared initial value of every other field.
func fill(cmd *cobra.Command, f *domain.Form, flags []*fieldFlag) {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag.name) {
			f.Set(flag.field, flag.value)
		}
	}
}

// submit sends the form and prints the outcome. Error messages reach the user
// through the form's error callback.
func submit(cmd *cobra.Command, a *app, f *domain.Form) error {
	f.OnError = func(message string) {
		color.Red.Println(message)
	}
	resp, err := a.submissions.Submit(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("%s submission failed: %w", f.Kind, err)
	}
	if text := resp.Text(); text != "" {
		color.Green.Println(text)
	} else {
		color.Green.Println("Done")
	}
	return nil
}

func newAssignGuestCmd(a *app) *cobra.Command {
	flags := []*fieldFlag{
		{name: "room", field: domain.FieldRoomID, usage: "room identifier"},
		{name: "guest", field: domain.FieldGuestName, usage: "guest full name"},
		{name: "email", field: domain.FieldGuestEmail, usage: "guest email"},
		{name: "check-in", field: domain.FieldCheckIn, usage: "check-in date"},
		{name: "check-out", field: domain.FieldCheckOut, usage: "check-out date"},
		{name: "message", field: domain.FieldMessage, usage: "message shown to the guest"},
	}
	cmd := &cobra.Command{
		Use:   "assign-guest",
		Short: "Assign a guest to a room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := domain.NewGuestAssignmentForm()
			fill(cmd, f, flags)
			return submit(cmd, a, f)
		},
	}
	bindFields(cmd, flags)
	return cmd
}

func newConfigureRoomCmd(a *app) *cobra.Command {
	flags := []*fieldFlag{
		{name: "room", field: domain.FieldRoomID, usage: "room identifier"},
		{name: "languages", field: domain.FieldSupportedLanguages, usage: "comma separated supported languages"},
		{name: "default", field: domain.FieldDefaultLanguage, usage: "default language (default English)"},
		{name: "welcome", field: domain.FieldWelcomeMessage, usage: "welcome message"},
	}
	cmd := &cobra.Command{
		Use:     "configure-room",
		Short:   "Configure the languages and welcome message of a room",
		Example: `  hotel-admin configure-room --room 101 --languages "French, German" --default English`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := domain.NewRoomConfigurationForm()
			fill(cmd, f, flags)
			return submit(cmd, a, f)
		},
	}
	bindFields(cmd, flags)
	return cmd
}

func newVerifyOTPCmd(a *app) *cobra.Command {
	flags := []*fieldFlag{
		{name: "email", field: domain.FieldEmail, usage: "admin email"},
		{name: "otp", field: domain.FieldOTP, usage: "one-time passcode received by email"},
	}
	cmd := &cobra.Command{
		Use:   "verify-otp",
		Short: "Verify the one-time passcode of an admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := domain.NewOTPForm()
			fill(cmd, f, flags)
			return submit(cmd, a, f)
		},
	}
	bindFields(cmd, flags)
	return cmd
}
