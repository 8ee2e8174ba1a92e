//go:build tools
// +build tools

// Package tools pins the code generators used by `go generate` (mockgen for
// the contract mocks) so that go.mod and go.sum stay in sync with them.
package hotel_admin

import (
	_ "go.uber.org/mock/mockgen"
)
