package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{79.999, 80.0},
		{80.0, 80.0},
		{66.666, 66.7},
		{59.94, 59.9},
		{0.05, 0.1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round1(tt.in), "round1(%v)", tt.in)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		part    int
		total   int
		want    float64
	}{
		{name: "zero total yields zero, not NaN", part: 0, total: 0, want: 0},
		{name: "3 of 5", part: 3, total: 5, want: 60.0},
		{name: "1 of 3 rounds to one decimal", part: 1, total: 3, want: 33.3},
		{name: "2 of 3 rounds up", part: 2, total: 3, want: 66.7},
		{name: "all present", part: 4, total: 4, want: 100.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, percentage(tt.part, tt.total))
		})
	}
}
