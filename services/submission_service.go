package services

import (
	"context"
	"fmt"
	"hotel-admin/auth"
	"hotel-admin/contract"
	"hotel-admin/domain"
	"hotel-admin/domain/form"
	"hotel-admin/domain/language"
	"hotel-admin/errors"
	"log/slog"
	"strings"
)

// ResetPolicy decides when a submitted form is cleared.
type ResetPolicy string

const (
	// ResetOnSuccess clears the form only once the backend confirmed the submission.
	ResetOnSuccess ResetPolicy = "on_success"
	// ResetAlways clears the form after every transport call, whatever its outcome.
	ResetAlways ResetPolicy = "always"
)

func ParseResetPolicy(s string) (ResetPolicy, error) {
	switch p := ResetPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ResetOnSuccess, nil
	case ResetOnSuccess, ResetAlways:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownResetPolicy, s)
	}
}

type ISubmissionService interface {
	Submit(ctx context.Context, f *domain.Form) (domain.APIResponse, error)
}

type SubmissionService struct {
	log       *slog.Logger
	transport contract.ITransport
	censor    contract.ICensor
	policy    ResetPolicy
}

func NewSubmissionService(log *slog.Logger, transport contract.ITransport,
	censor contract.ICensor, policy ResetPolicy) *SubmissionService {
	return &SubmissionService{log: log, transport: transport, censor: censor, policy: policy}
}

// Submit sends the current state of f to the backend.
//
// A form only has one submission in flight at a time. The default value of every
// derived list field is reconciled before the payload is built. Validation
// failures never reach the transport and never clear the form. Failures are
// returned and also handed to the form's error callback.
func (s *SubmissionService) Submit(ctx context.Context, f *domain.Form) (domain.APIResponse, error) {
	tracker := f.Tracker()
	if !tracker.Begin() {
		f.ReportError("A submission is already in progress")
		return domain.APIResponse{}, errors.ErrSubmissionInFlight
	}

	snap := reconcileDefaults(f.State)
	send, err := s.prepare(f.Kind, snap)
	if err != nil {
		tracker.End(err)
		f.ReportError(errors.Message(err))
		return domain.APIResponse{}, err
	}

	resp, err := send(ctx)
	tracker.End(err)
	if err == nil || s.policy == ResetAlways {
		f.State.Reset()
	}
	if err != nil {
		s.log.Warn("Submission failed", "form", f.Kind, "error", err)
		f.ReportError(errors.Message(err))
		return resp, err
	}

	s.log.Info("Submission accepted", "form", f.Kind)
	return resp, nil
}

type sendFunc func(ctx context.Context) (domain.APIResponse, error)

// prepare builds and validates the payload of a form kind and returns the call that sends it.
func (s *SubmissionService) prepare(kind domain.FormKind, snap form.Snapshot) (sendFunc, error) {
	switch kind {
	case domain.GuestAssignment:
		cmd := domain.AssignGuestFromSnapshot(snap)
		if err := domain.Validate(cmd); err != nil {
			return nil, err
		}
		cmd.Message = s.moderate(cmd.Room, cmd.Message)
		return func(ctx context.Context) (domain.APIResponse, error) {
			return s.transport.AssignGuest(ctx, cmd)
		}, nil

	case domain.RoomConfiguration:
		cmd := domain.ConfigureRoomFromSnapshot(snap)
		if err := domain.Validate(cmd); err != nil {
			return nil, err
		}
		s.checkWelcomeLanguage(cmd)
		return func(ctx context.Context) (domain.APIResponse, error) {
			return s.transport.ConfigureRoom(ctx, cmd)
		}, nil

	case domain.OTPVerification:
		req := domain.VerifyOTPFromSnapshot(snap)
		if err := auth.ValidateVerifyOTP(req); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (domain.APIResponse, error) {
			return s.transport.VerifyOTP(ctx, req)
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown form %q", errors.ErrInvalidInput, kind)
	}
}

// reconcileDefaults snapshots the state and steers each paired default field
// towards a member of its derived list.
func reconcileDefaults(state *form.State) form.Snapshot {
	snap := state.Snapshot()
	for _, listField := range state.ListFields() {
		defaultField, ok := domain.DefaultFields[listField]
		if !ok || !state.Has(defaultField) {
			continue
		}
		reconciled := language.Reconcile(snap.List(listField), snap.Text(defaultField))
		snap = snap.With(defaultField, reconciled)
	}
	return snap
}

func (s *SubmissionService) moderate(room, message string) string {
	if s.censor == nil || message == "" {
		return message
	}
	censored, words := s.censor.Censor(message)
	if len(words) > 0 {
		s.log.Info("Guest message moderated", "room", room, "censored_words", len(words))
	}
	return censored
}

// checkWelcomeLanguage only warns: the backend stays the judge of room settings.
func (s *SubmissionService) checkWelcomeLanguage(cmd domain.ConfigureRoomCommand) {
	if strings.TrimSpace(cmd.WelcomeMessage) == "" || len(cmd.SupportedLanguages) == 0 {
		return
	}
	detection := language.Detect(cmd.WelcomeMessage)
	if !detection.Reliable || detection.Supports(cmd.SupportedLanguages) {
		return
	}
	s.log.Warn("Welcome message language is not supported by the room",
		"room", cmd.Room,
		"detected", detection.Name,
		"supported", cmd.SupportedLanguages)
}
