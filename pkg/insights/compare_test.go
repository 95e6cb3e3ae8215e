package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		current  int
		expected int
	}{
		{"both zero", 0, 0, 0},
		{"new activity from zero baseline", 0, 5, 100},
		{"fifty percent up", 10, 15, 50},
		{"fifty percent down", 10, 5, -50},
		{"unchanged", 10, 10, 0},
		{"dropped to zero", 10, 0, -100},
		{"rounds to nearest", 3, 4, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentChange(tt.previous, tt.current))
		})
	}
}
