package swap

import (
	"testing"

	"anoa.com/skillswap/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to entity.SwapStatus
		allowed  bool
	}{
		{entity.SwapStatusPending, entity.SwapStatusAccepted, true},
		{entity.SwapStatusPending, entity.SwapStatusRejected, true},
		{entity.SwapStatusPending, entity.SwapStatusCancelled, true},
		{entity.SwapStatusPending, entity.SwapStatusCompleted, false},
		{entity.SwapStatusPending, entity.SwapStatusPending, false},
		{entity.SwapStatusAccepted, entity.SwapStatusCompleted, true},
		{entity.SwapStatusAccepted, entity.SwapStatusRejected, false},
		{entity.SwapStatusAccepted, entity.SwapStatusCancelled, false},
		{entity.SwapStatusRejected, entity.SwapStatusPending, false},
		{entity.SwapStatusRejected, entity.SwapStatusAccepted, false},
		{entity.SwapStatusCancelled, entity.SwapStatusAccepted, false},
		{entity.SwapStatusCompleted, entity.SwapStatusPending, false},
		{entity.SwapStatusCompleted, entity.SwapStatusAccepted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, entity.SwapStatusPending.Terminal())
	assert.False(t, entity.SwapStatusAccepted.Terminal())
	assert.True(t, entity.SwapStatusRejected.Terminal())
	assert.True(t, entity.SwapStatusCancelled.Terminal())
	assert.True(t, entity.SwapStatusCompleted.Terminal())
}
