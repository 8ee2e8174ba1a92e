//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"hotel-admin/domain"
)

// ITransport carries submission payloads to the hotel backend.
type ITransport interface {
	AssignGuest(ctx context.Context, cmd domain.AssignGuestCommand) (domain.APIResponse, error)
	ConfigureRoom(ctx context.Context, cmd domain.ConfigureRoomCommand) (domain.APIResponse, error)
	VerifyOTP(ctx context.Context, req domain.VerifyOTPRequest) (domain.APIResponse, error)
}

type IAuthTransport interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResult, error)
	Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthResult, error)
	SetToken(token string)
}

type IProber interface {
	Probe(ctx context.Context, method, path string) domain.ProbeResult
}

// ICensor masks banned words and reports which ones were found.
type ICensor interface {
	Censor(text string) (string, []string)
}
