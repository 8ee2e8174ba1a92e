package main

import (
	"fmt"
	"hotel-admin/domain"
	"hotel-admin/services"
	"net/http"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func newProbeCmd(a *app) *cobra.Command {
	var onlyFound bool
	cmd := &cobra.Command{
		Use:   "probe [path...]",
		Short: "Probe the known admin endpoints, plus any given path",
		Long: "Sends a GET to every candidate endpoint one after the other and reports " +
			"which ones exist. Any answer other than 404 counts as existing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := a.discovery.Discover(cmd.Context(), args...)
			if onlyFound {
				results = services.Found(results)
			}
			renderProbes(results)
			return cmd.Context().Err()
		},
	}
	cmd.Flags().BoolVar(&onlyFound, "found", false, "only list the endpoints that exist")
	return cmd
}

func renderProbes(results []domain.ProbeResult) {
	table := newTable("Method", "Path", "Status", "Latency", "Exists")
	for _, r := range results {
		table.Append([]string{
			r.Method,
			r.Path,
			probeStatus(r),
			r.Latency.Round(time.Millisecond).String(),
			probeExists(r),
		})
	}
	table.Render()
}

func probeStatus(r domain.ProbeResult) string {
	if r.Err != nil {
		return color.Red.Sprint(r.Err.Error())
	}
	text := strconv.Itoa(r.Status)
	switch {
	case r.Status >= http.StatusInternalServerError:
		return color.Red.Sprint(text)
	case r.Status >= http.StatusBadRequest:
		return color.Yellow.Sprint(text)
	default:
		return color.Green.Sprint(text)
	}
}

func probeExists(r domain.ProbeResult) string {
	if r.Exists() {
		return color.Green.Sprint("yes")
	}
	return color.Gray.Sprint("no")
}

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages the backend supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			languages, err := a.client.ListLanguages(cmd.Context())
			if err != nil {
				return fmt.Errorf("languages listing failed: %w", err)
			}
			table := newTable("Code", "Name")
			for _, l := range languages {
				table.Append([]string{l.Code, l.Name})
			}
			table.Render()
			return nil
		},
	}
}
