package domain

import (
	"hotel-admin/domain/form"
	"strings"
)

type RoomID string

const (
	FieldRoomID             form.Field = "room_id"
	FieldSupportedLanguages form.Field = "supported_languages"
	FieldDefaultLanguage    form.Field = "default_language"
	FieldWelcomeMessage     form.Field = "welcome_message"
)

const defaultLanguage = "English"

func NewRoomConfigurationForm() *Form {
	return newForm(RoomConfiguration, form.NewState(
		form.TextField(FieldRoomID, ""),
		form.ListField(FieldSupportedLanguages),
		form.TextField(FieldDefaultLanguage, defaultLanguage),
		form.TextField(FieldWelcomeMessage, ""),
	))
}

type ConfigureRoomCommand struct {
	Room               string   `json:"roomId" validate:"required"`
	SupportedLanguages []string `json:"supportedLanguages"`
	DefaultLanguage    string   `json:"defaultLanguage"`
	WelcomeMessage     string   `json:"welcomeMessage"`
}

func (c ConfigureRoomCommand) RoomID() RoomID {
	return RoomID(c.Room)
}

func ConfigureRoomFromSnapshot(snap form.Snapshot) ConfigureRoomCommand {
	return ConfigureRoomCommand{
		Room:               strings.TrimSpace(snap.Text(FieldRoomID)),
		SupportedLanguages: snap.List(FieldSupportedLanguages),
		DefaultLanguage:    snap.Text(FieldDefaultLanguage),
		WelcomeMessage:     snap.Text(FieldWelcomeMessage),
	}
}
