package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTsAfter(t *testing.T) {
	tests := []struct {
		name     string
		ts       string
		floor    string
		expected bool
	}{
		{
			name:     "Newer timestamp",
			ts:       "1700000000.000200",
			floor:    "1700000000.000100",
			expected: true,
		},
		{
			name:     "Older timestamp",
			ts:       "1700000000.000100",
			floor:    "1700000000.000200",
			expected: false,
		},
		{
			name:     "Equal timestamps",
			ts:       "1700000000.000100",
			floor:    "1700000000.000100",
			expected: false,
		},
		{
			name:     "Numeric order beats string order",
			ts:       "1700000000.2",
			floor:    "1700000000.000100",
			expected: true,
		},
		{
			name:     "Different second parts",
			ts:       "1700000001.000000",
			floor:    "1700000000.999999",
			expected: true,
		},
		{
			name:     "Unparseable falls back to string compare",
			ts:       "b",
			floor:    "a",
			expected: true,
		},
		{
			name:     "Empty values",
			ts:       "",
			floor:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TsAfter(tt.ts, tt.floor))
		})
	}
}
