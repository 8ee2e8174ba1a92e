package main

import (
	"errors"
	"hotel-admin/domain"
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func Test_Fill(t *testing.T) {
	newCmd := func(flags []*fieldFlag) *cobra.Command {
		cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
		bindFields(cmd, flags)
		return cmd
	}

	t.Run("should only set the fields whose flag was passed", func(t *testing.T) {
		req := require.New(t)
		flags := []*fieldFlag{
			{name: "room", field: domain.FieldRoomID},
			{name: "languages", field: domain.FieldSupportedLanguages},
			{name: "default", field: domain.FieldDefaultLanguage},
		}
		cmd := newCmd(flags)
		req.NoError(cmd.ParseFlags([]string{"--room", "101", "--languages", "French, German"}))

		f := domain.NewRoomConfigurationForm()
		fill(cmd, f, flags)

		req.Equal("101", f.State.Text(domain.FieldRoomID))
		req.Equal([]string{"French", "German"}, f.State.List(domain.FieldSupportedLanguages))
		req.Equal("English", f.State.Text(domain.FieldDefaultLanguage))
	})

	t.Run("should let an explicitly empty flag clear a field", func(t *testing.T) {
		req := require.New(t)
		flags := []*fieldFlag{{name: "default", field: domain.FieldDefaultLanguage}}
		cmd := newCmd(flags)
		req.NoError(cmd.ParseFlags([]string{"--default", ""}))

		f := domain.NewRoomConfigurationForm()
		fill(cmd, f, flags)

		req.Empty(f.State.Text(domain.FieldDefaultLanguage))
	})
}

func Test_ProbeCells(t *testing.T) {
	req := require.New(t)

	req.Contains(probeExists(domain.ProbeResult{Status: http.StatusMethodNotAllowed}), "yes")
	req.Contains(probeExists(domain.ProbeResult{Status: http.StatusNotFound}), "no")
	req.Contains(probeStatus(domain.ProbeResult{Status: http.StatusOK}), "200")
	req.Contains(probeStatus(domain.ProbeResult{Err: errors.New("connection refused")}), "connection refused")
}
