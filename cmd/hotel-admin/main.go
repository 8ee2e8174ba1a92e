package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"hotel-admin/client"
	"hotel-admin/errors"
	"hotel-admin/internal"
	"hotel-admin/moderation"
	"hotel-admin/repositories"
	"hotel-admin/services"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

// Exit codes of the admin CLI.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

var errConfig = stderrors.New("configuration")

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hotel-admin: %v\n", err)
	}
	os.Exit(code)
}

// run wires the CLI and maps failures to exit codes, so deferred cleanups
// (closing the session store) always happen before the process exits.
func run() (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	if err := root.ExecuteContext(ctx); err != nil {
		if stderrors.Is(err, errConfig) {
			return exitConfig, err
		}
		return exitRuntime, err
	}
	return exitOK, nil
}

// app holds what every command shares. It is filled by the root pre-run hook.
type app struct {
	config      internal.Config
	log         *slog.Logger
	client      *client.Client
	db          *badger.DB
	sessions    repositories.ISessionRepository
	auth        *services.AuthService
	submissions *services.SubmissionService
	discovery   *services.DiscoveryService
}

func (a *app) init(envFile string) error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig(envFiles(envFile)...)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	a.config = config
	a.log = logs.GetLoggerFromString(config.LogLevel)

	policy, err := services.ParseResetPolicy(config.ResetPolicy)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	replacement, err := config.CharacterRune()
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	// 2. Transport
	a.client, err = client.NewClient(a.log, config.ClientOptions())
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	// 3. Session store (BadgerDB)
	a.db, err = badger.Open(badger.DefaultOptions(config.SessionDBPath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("session store opening failed: %w", err)
	}
	a.sessions = repositories.NewSessionRepository(a.db, a.log)

	// 4. Services
	moderator, err := moderation.NewModerator(config.Words(), replacement, a.log)
	if err != nil {
		return fmt.Errorf("moderator failed to build: %w", err)
	}
	a.auth = services.NewAuthService(a.log, a.client, a.sessions)
	a.submissions = services.NewSubmissionService(a.log, a.client, moderator, policy)
	a.discovery = services.NewDiscoveryService(a.log, a.client)
	return nil
}

// restoreSession authenticates the client with the stored session of email, if any.
func (a *app) restoreSession(email string) {
	if email == "" {
		return
	}
	if _, err := a.auth.Restore(email); err != nil {
		if stderrors.Is(err, errors.ErrSessionNotFound) || stderrors.Is(err, errors.ErrSessionExpired) {
			a.log.Warn("No usable session, sending unauthenticated requests", "email", email, "reason", err)
			return
		}
		a.log.Warn("Session restore failed", "email", email, "error", err)
	}
}

func (a *app) close() {
	if a.db != nil {
		if a.log != nil {
			a.log.Debug("Closing session store...")
		}
		_ = a.db.Close()
	}
}

func envFiles(path string) []string {
	if path == "" {
		return nil
	}
	return []string{path}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		envFile string
		email   string
	)

	root := &cobra.Command{
		Use:           "hotel-admin",
		Short:         "Administration client for the hotel backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(envFile); err != nil {
				return err
			}
			if email == "" {
				email = a.config.AdminEmail
			}
			a.restoreSession(email)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before the environment (default .env)")
	root.PersistentFlags().StringVar(&email, "as", "", "admin email whose stored session authenticates requests (default ADMIN_EMAIL)")

	root.AddCommand(
		newAssignGuestCmd(a),
		newConfigureRoomCmd(a),
		newVerifyOTPCmd(a),
		newLoginCmd(a),
		newSignupCmd(a),
		newLanguagesCmd(a),
		newProbeCmd(a),
		newSessionCmd(a),
	)
	return root
}
