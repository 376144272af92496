package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{1234.5, "1,234.5"},
		{-1234567, "-12,34,567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestCalculateAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, CalculateAverageRating(nil))
	assert.Equal(t, 0.0, CalculateAverageRating([]float64{}))
	assert.Equal(t, 4.7, CalculateAverageRating([]float64{4, 5, 5}))
	assert.Equal(t, 3.0, CalculateAverageRating([]float64{3}))
	assert.Equal(t, 2.5, CalculateAverageRating([]float64{2, 3}))
	assert.Equal(t, 4.3, CalculateAverageRating([]float64{4, 4, 5}))
}
