package main

import (
	"hotel-admin/auth"
	"hotel-admin/repositories"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or clear the stored admin sessions",
	}
	cmd.AddCommand(newSessionShowCmd(a), newSessionClearCmd(a))
	return cmd
}

func newSessionShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the stored sessions and what their tokens contain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := a.sessions.List()
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				color.Yellow.Println("No stored session")
				return nil
			}
			renderSessions(sessions, time.Now())
			return nil
		},
	}
}

func newSessionClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [email...]",
		Short: "Forget the sessions of the given emails, or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			emails := args
			if len(emails) == 0 {
				sessions, err := a.sessions.List()
				if err != nil {
					return err
				}
				emails = lo.Map(sessions, func(s repositories.Session, _ int) string { return s.Email })
			}
			for _, email := range emails {
				if err := a.auth.Logout(email); err != nil {
					return err
				}
				color.Green.Printf("Session of %s cleared\n", email)
			}
			return nil
		},
	}
}

func renderSessions(sessions []repositories.Session, now time.Time) {
	table := newTable("Email", "Session", "Created", "Subject", "Roles", "Expires")
	for _, s := range sessions {
		subject, roles, expires := "-", "-", "-"
		if info, err := auth.InspectToken(s.Token); err == nil {
			subject = info.Subject
			roles = strings.Join(info.Roles, ",")
			if !info.ExpiresAt.IsZero() {
				expires = info.ExpiresAt.Format(time.RFC3339)
				if info.Expired(now) {
					expires = color.Red.Sprint(expires)
				}
			}
		}
		table.Append([]string{
			s.Email,
			s.ID.String()[:8],
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			subject,
			roles,
			expires,
		})
	}
	table.Render()
}
