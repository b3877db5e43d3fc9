package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBestScale(t *testing.T) {
	tests := []struct {
		rng      float64
		maxCount int
		want     float64
	}{
		{10, 10, 1},
		{100, 10, 10},
		{10, 2, 5},
		{200, 10, 20},
		{190, 10, 20},
		{0, 10, 1},
		{0.5, 10, 1},
		{-190, 10, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FindBestScale(tt.rng, tt.maxCount), "range %v, max %d", tt.rng, tt.maxCount)
	}
}

func TestScaleMarkers(t *testing.T) {
	tests := []struct {
		name           string
		min, max, step float64
		want           []float64
	}{
		{"straddles zero", -9, 19, 10, []float64{-10, 0, 10, 20}},
		{"empty range", 0, 0, 10, []float64{0}},
		{"unit steps", 0, 10, 1, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"degenerate step", 3, 10, 0, []float64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScaleMarkers(tt.min, tt.max, tt.step))
		})
	}
}

func TestLinearScale(t *testing.T) {
	s := linearScale{d0: 20, d1: 0, r0: 10, r1: 240}
	assert.Equal(t, 10.0, s.at(20))
	assert.Equal(t, 240.0, s.at(0))
	assert.Equal(t, 125.0, s.at(10))

	flat := linearScale{d0: 0, d1: 0, r0: 10, r1: 240}
	assert.Equal(t, 125.0, flat.at(0))
}
