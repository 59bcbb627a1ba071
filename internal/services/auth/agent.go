// Package auth validates the opaque agent credential presented on every data
// and tool request. The credential is treated as an identity token, not a
// secret: validation is a shape check, not an authentication scheme.
package auth

import (
	"errors"
	"strings"

	"github.com/haleworth/riskintel/internal/common"
)

// ErrInvalidAgentKey indicates a missing or malformed agent credential
var ErrInvalidAgentKey = errors.New("invalid or missing agent key")

// Service validates agent keys against the configured prefix
type Service struct {
	prefix string
}

// NewService creates a new agent auth service
func NewService(config common.AuthConfig) *Service {
	prefix := config.AgentKeyPrefix
	if prefix == "" {
		prefix = "agent-"
	}
	return &Service{prefix: prefix}
}

// ValidateAgentKey checks that the key is present and carries the agent
// prefix. Returns ErrInvalidAgentKey otherwise.
func (s *Service) ValidateAgentKey(key string) error {
	if key == "" || !strings.HasPrefix(key, s.prefix) {
		return ErrInvalidAgentKey
	}
	return nil
}
