package services

import (
	"context"
	"hotel-admin/contract"
	"hotel-admin/domain"
	"log/slog"
	"net/http"
	"strings"

	"github.com/samber/lo"
)

// DefaultCandidates are the naming conventions tried to find out how the backend routes admin resources.
var DefaultCandidates = []string{
	"/api/admin",
	"/api/admins",
	"/api/admin/login",
	"/api/rooms",
	"/api/reservations/",
	"/api/languages/",
}

type DiscoveryService struct {
	log    *slog.Logger
	prober contract.IProber
}

func NewDiscoveryService(log *slog.Logger, prober contract.IProber) *DiscoveryService {
	return &DiscoveryService{log: log, prober: prober}
}

// Discover probes the default candidates then the extra paths, one after the other,
// in that order. It stops early when ctx is cancelled.
func (s *DiscoveryService) Discover(ctx context.Context, extra ...string) []domain.ProbeResult {
	paths := lo.Uniq(append(append([]string{}, DefaultCandidates...), lo.Compact(lo.Map(extra, func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))...))

	results := make([]domain.ProbeResult, 0, len(paths))
	for _, path := range paths {
		if ctx.Err() != nil {
			s.log.Info("Discovery interrupted", "probed", len(results), "remaining", len(paths)-len(results))
			break
		}
		result := s.prober.Probe(ctx, http.MethodGet, path)
		s.log.Debug("Probed", "path", path, "status", result.Status, "latency", result.Latency)
		results = append(results, result)
	}
	return results
}

// Found keeps the probes the backend seems to route.
func Found(results []domain.ProbeResult) []domain.ProbeResult {
	return lo.Filter(results, func(r domain.ProbeResult, _ int) bool {
		return r.Exists()
	})
}
