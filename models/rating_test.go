package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingValidate(t *testing.T) {
	for score := MinRatingScore; score <= MaxRatingScore; score++ {
		r := Rating{Score: score}
		assert.NoError(t, r.Validate())
	}

	for _, score := range []int{0, -1, 6, 100} {
		r := Rating{Score: score}
		assert.Error(t, r.Validate(), "score %d", score)
	}
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"no ratings", nil, 0},
		{"single rating", []int{4}, 4},
		{"exact mean", []int{4, 2}, 3},
		{"rounded to one decimal", []int{5, 4, 4}, 4.3},
		{"rounds half up", []int{4, 3}, 3.5},
		{"all fives", []int{5, 5, 5, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageScore(tt.scores))
		})
	}
}

func TestRoundAverage(t *testing.T) {
	assert.Equal(t, 4.3, RoundAverage(4.3333))
	assert.Equal(t, 4.7, RoundAverage(4.6666))
	assert.Equal(t, 0.0, RoundAverage(0))
	assert.Equal(t, 5.0, RoundAverage(4.99))
}
