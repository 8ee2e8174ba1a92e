package domain

import (
	"encoding/json"
	"net/http"
	"time"
)

// APIResponse is the envelope the backend answers with.
type APIResponse struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Token   string          `json:"token,omitempty"`
}

func (r APIResponse) Rejected() bool {
	return r.Success != nil && !*r.Success
}

// Text returns the most descriptive human-readable text of the envelope.
func (r APIResponse) Text() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}

type AuthResult struct {
	Token   string
	Message string
}

type Language struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name"`
}

type ProbeResult struct {
	Method  string
	Path    string
	Status  int
	Latency time.Duration
	Err     error
}

// Exists reports whether the backend routes the path, whatever the method it expects.
func (p ProbeResult) Exists() bool {
	if p.Err != nil || p.Status == 0 {
		return false
	}
	return p.Status != http.StatusNotFound
}
