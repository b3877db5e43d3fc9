package chart

import (
	"strconv"
	"strings"
)

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// linePath returns an SVG path through dots in order
func linePath(dots []Dot) string {
	if len(dots) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range dots {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(coord(d.X))
		b.WriteByte(',')
		b.WriteString(coord(d.Y))
	}
	return b.String()
}

// areaPath returns a closed SVG path between the line through dots and the
// horizontal baseline
func areaPath(dots []Dot, baseline float64) string {
	if len(dots) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(linePath(dots))
	for i := len(dots) - 1; i >= 0; i-- {
		b.WriteByte('L')
		b.WriteString(coord(dots[i].X))
		b.WriteByte(',')
		b.WriteString(coord(baseline))
	}
	b.WriteByte('Z')
	return b.String()
}
