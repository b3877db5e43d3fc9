package chart

import (
	"math"
	"time"
)

var scaleSteps = [...]float64{1, 2, 5}

// FindBestScale returns the smallest step among 1, 2 and 5 times a power of
// ten that splits rng into at most maxCount intervals.
func FindBestScale(rng float64, maxCount int) float64 {
	if maxCount < 1 {
		maxCount = 1
	}
	if math.IsNaN(rng) || math.IsInf(rng, 0) {
		return 0
	}
	rng = math.Abs(rng)

	for factor := 1.0; ; factor *= 10 {
		for _, step := range scaleSteps {
			total := step * factor
			if rng/total <= float64(maxCount) {
				return total
			}
		}
	}
}

// ScaleMarkers returns the multiples of step from the one at or below min
// up to the first one at or above max.
func ScaleMarkers(min, max, step float64) []float64 {
	start := math.Floor(min/step) * step
	if step <= 0 || math.IsNaN(start) || math.IsInf(start, 0) {
		return []float64{min}
	}

	markers := []float64{start}
	for i := 1; markers[len(markers)-1] < max; i++ {
		markers = append(markers, start+float64(i)*step)
	}
	return markers
}

// linearScale maps a numeric domain onto a pixel range
type linearScale struct {
	d0, d1 float64
	r0, r1 float64
}

func (s linearScale) at(v float64) float64 {
	if s.d0 == s.d1 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// timeScale maps an instant range onto a pixel range
type timeScale struct {
	from, to time.Time
	r0, r1   float64
}

func (s timeScale) at(t time.Time) float64 {
	total := s.to.Sub(s.from)
	if total == 0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + float64(t.Sub(s.from))/float64(total)*(s.r1-s.r0)
}
