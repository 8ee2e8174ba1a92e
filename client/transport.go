package client

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// LoggingTransport is an instrumented round tripper injected into the HTTP client.
// It logs every exchange and, when debugBodies is set, the full bodies.
type LoggingTransport struct {
	next        http.RoundTripper
	log         *slog.Logger
	debugBodies bool
}

func NewLoggingTransport(next http.RoundTripper, log *slog.Logger, debugBodies bool) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingTransport{next: next, log: log, debugBodies: debugBodies}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	attrs := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(RequestIDHeader),
	}

	if t.debugBodies && req.Body != nil {
		req = req.Clone(req.Context())
		body, err := drain(&req.Body)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, "request_body", body)
	}

	resp, err := t.next.RoundTrip(req)
	attrs = append(attrs, "latency", time.Since(start))
	if err != nil {
		t.log.Warn("HTTP request failed", append(attrs, "error", err)...)
		return nil, err
	}

	attrs = append(attrs, "status", resp.StatusCode)
	if t.debugBodies && resp.Body != nil {
		body, err := drain(&resp.Body)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, "response_body", body)
	}

	if resp.StatusCode >= 500 {
		t.log.Warn(fmt.Sprintf("HTTP %s %s", req.Method, req.URL.Path), attrs...)
	} else {
		t.log.Debug(fmt.Sprintf("HTTP %s %s", req.Method, req.URL.Path), attrs...)
	}
	return resp, nil
}

// drain reads a body fully and puts back an equivalent reader.
func drain(body *io.ReadCloser) (string, error) {
	raw, err := io.ReadAll(*body)
	_ = (*body).Close()
	if err != nil {
		return "", err
	}
	*body = io.NopCloser(bytes.NewReader(raw))
	return strings.TrimSpace(string(raw)), nil
}
