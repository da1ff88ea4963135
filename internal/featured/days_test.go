package featured

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"exactly seven days", now.Add(7 * day), 7},
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
		{"one minute left", now.Add(time.Minute), 1},
		{"just expired", now, 0},
		{"long expired", now.Add(-3 * day), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRemaining(tt.end, now))
		})
	}
}

func TestIsAllowedDuration(t *testing.T) {
	assert.True(t, IsAllowedDuration(7))
	assert.True(t, IsAllowedDuration(15))
	assert.True(t, IsAllowedDuration(30))
	assert.False(t, IsAllowedDuration(0))
	assert.False(t, IsAllowedDuration(14))
}
