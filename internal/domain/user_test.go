package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserState_Valid(t *testing.T) {
	tests := []struct {
		name     string
		state    UserState
		expected bool
	}{
		{
			name:     "idle",
			state:    StateIdle,
			expected: true,
		},
		{
			name:     "creating project",
			state:    StateCreatingProject,
			expected: true,
		},
		{
			name:     "deleting project",
			state:    StateDeletingProject,
			expected: true,
		},
		{
			name:     "unknown state",
			state:    UserState("archived"),
			expected: false,
		},
		{
			name:     "empty state",
			state:    UserState(""),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Valid())
		})
	}
}
