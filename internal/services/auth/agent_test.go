package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haleworth/riskintel/internal/common"
)

func TestValidateAgentKey(t *testing.T) {
	service := NewService(common.AuthConfig{AgentKeyPrefix: "agent-"})

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid key", "agent-risk-officer", false},
		{"prefix alone is accepted", "agent-", false},
		{"empty key", "", true},
		{"wrong prefix", "user-risk-officer", true},
		{"prefix not at start", "risk-agent-officer", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateAgentKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAgentKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAgentKey_CustomPrefix(t *testing.T) {
	service := NewService(common.AuthConfig{AgentKeyPrefix: "svc-"})

	assert.NoError(t, service.ValidateAgentKey("svc-reporting"))
	assert.Error(t, service.ValidateAgentKey("agent-reporting"))
}

func TestNewService_DefaultPrefix(t *testing.T) {
	service := NewService(common.AuthConfig{})

	assert.NoError(t, service.ValidateAgentKey("agent-default"))
	assert.Error(t, service.ValidateAgentKey("other-default"))
}
