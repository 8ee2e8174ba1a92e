package main

import (
	"hotel-admin/auth"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an admin and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			color.Green.Printf("Logged in as %s\n", email)
			printTokenInfo(token.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	return cmd
}

func newSignupCmd(a *app) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.auth.Signup(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			if token == "" {
				color.Yellow.Printf("Account created for %s, verify it with the OTP sent by email\n", email)
				return nil
			}
			color.Green.Printf("Account created, logged in as %s\n", email)
			printTokenInfo(token.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "admin display name")
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	return cmd
}

// printTokenInfo shows what the backend put in the token, when it is a JWT.
func printTokenInfo(token string) {
	info, err := auth.InspectToken(token)
	if err != nil {
		color.Gray.Println("Opaque token")
		return
	}
	color.Gray.Printf("subject=%s roles=%v", info.Subject, info.Roles)
	if !info.ExpiresAt.IsZero() {
		color.Gray.Printf(" expires=%s", info.ExpiresAt.Format(time.RFC3339))
	}
	color.Gray.Println()
}
