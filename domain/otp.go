package domain

import (
	"hotel-admin/domain/form"
	"strings"
)

const (
	FieldEmail form.Field = "email"
	FieldOTP   form.Field = "otp"
)

func NewOTPForm() *Form {
	return newForm(OTPVerification, form.NewState(
		form.TextField(FieldEmail, ""),
		form.TextField(FieldOTP, ""),
	))
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func VerifyOTPFromSnapshot(snap form.Snapshot) VerifyOTPRequest {
	return VerifyOTPRequest{
		Email: strings.TrimSpace(snap.Text(FieldEmail)),
		OTP:   strings.TrimSpace(snap.Text(FieldOTP)),
	}
}
