// Package chart lays out computed balance points as chart coordinates: dots
// with their uncertainty range, the balance line and area, and axis markers.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// Paddings around the plotting area, in pixels
const (
	TopPadding    = 10
	BottomPadding = 50
	LeftPadding   = 30
	RightPadding  = 25
)

const maxYScaleCount = 10

// Dims is the size of the chart in pixels
type Dims struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Range is a vertical pixel span
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Dot is one plotted balance. Checkpoint days get two dots: the expected
// balance flagged IsCheckpoint, and the actual balance.
type Dot struct {
	X            float64   `json:"x"`
	Y            float64   `json:"y"`
	YRange       Range     `json:"y_range"`
	IsCheckpoint bool      `json:"is_checkpoint"`
	Color        string    `json:"color"`
	Date         time.Time `json:"date"`
}

// Marker is an axis graduation
type Marker struct {
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// YAxis holds the value domain and the pixel position of zero
type YAxis struct {
	Zero float64 `json:"zero"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Chart is everything needed to draw a balance chart
type Chart struct {
	Dims       Dims             `json:"dims"`
	Y          YAxis            `json:"y"`
	Line       string           `json:"line"`
	Area       string           `json:"area"`
	Dots       []Dot            `json:"dots"`
	XMarkers   []Marker         `json:"x_markers"`
	YMarkers   []Marker         `json:"y_markers"`
	MostRecent *decimal.Decimal `json:"most_recent,omitempty"`
}

var operationColors = map[business.OperationType][3]int{
	business.OperationTypeRecurring:  {0xff, 0x00, 0x00},
	business.OperationTypeOneTime:    {0x00, 0xff, 0x00},
	business.OperationTypeCheckpoint: {0x00, 0x00, 0xff},
}

// Build lays out points inside dims. from and to override the x domain,
// which otherwise spans the first to the last point. The y domain always
// includes zero.
func Build(points []timeline.ComputedDataPoint, from, to *time.Time, dims Dims, loc *time.Location) (*Chart, error) {
	if loc == nil {
		loc = time.Local
	}

	minY, maxY := 0.0, 0.0
	for _, p := range points {
		low, high := p.Expected.Min.InexactFloat64(), p.Expected.Max.InexactFloat64()
		if p.Actual != nil {
			low = p.Actual.InexactFloat64()
			high = low
		}
		minY = math.Min(minY, low)
		maxY = math.Max(maxY, high)
	}
	scaleY := linearScale{d0: maxY, d1: minY, r0: TopPadding, r1: dims.Height - (TopPadding + BottomPadding)}

	c := &Chart{
		Dims:     dims,
		Y:        YAxis{Zero: scaleY.at(0), Min: minY, Max: maxY},
		Dots:     []Dot{},
		XMarkers: []Marker{},
		YMarkers: []Marker{},
	}

	minX, maxX, ok := xDomain(points, from, to)
	if !ok {
		return c, nil
	}
	scaleX := timeScale{from: minX, to: maxX, r0: LeftPadding, r1: dims.Width - RightPadding}

	line := make([]Dot, 0, len(points))
	for _, p := range points {
		x := scaleX.at(p.Date)
		color := dotColor(p.Operations)
		dot := Dot{
			X: x,
			Y: scaleY.at(p.Expected.Sum.InexactFloat64()),
			YRange: Range{
				Min: scaleY.at(p.Expected.Min.InexactFloat64()),
				Max: scaleY.at(p.Expected.Max.InexactFloat64()),
			},
			IsCheckpoint: p.HasCheckpoint(),
			Color:        color,
			Date:         p.Date,
		}
		c.Dots = append(c.Dots, dot)
		if !dot.IsCheckpoint {
			line = append(line, dot)
			continue
		}

		y := scaleY.at(p.Actual.InexactFloat64())
		actual := Dot{X: x, Y: y, YRange: Range{Min: y, Max: y}, Color: color, Date: p.Date}
		c.Dots = append(c.Dots, actual)
		line = append(line, actual)
	}
	c.Line = linePath(line)
	c.Area = areaPath(line, c.Y.Zero)

	dates, format, err := DateMarkers(minX, maxX, loc)
	if err != nil {
		return nil, err
	}
	for _, d := range dates {
		c.XMarkers = append(c.XMarkers, Marker{Position: scaleX.at(d), Label: format(d)})
	}

	step := FindBestScale(maxY-minY, maxYScaleCount)
	for _, v := range ScaleMarkers(minY, maxY, step) {
		c.YMarkers = append(c.YMarkers, Marker{Position: scaleY.at(v), Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}

	if len(points) > 0 {
		last := points[len(points)-1].Expected.Sum
		c.MostRecent = &last
	}
	return c, nil
}

func xDomain(points []timeline.ComputedDataPoint, from, to *time.Time) (time.Time, time.Time, bool) {
	var minX, maxX time.Time
	if len(points) > 0 {
		minX, maxX = points[0].Date, points[len(points)-1].Date
	}
	if from != nil {
		minX = *from
	}
	if to != nil {
		maxX = *to
	}
	if minX.IsZero() || maxX.IsZero() {
		return minX, maxX, false
	}
	return minX, maxX, true
}

// dotColor averages the colors of the kinds of operations behind a point
func dotColor(ops []timeline.ExpandedOperation) string {
	if len(ops) == 0 {
		return "000000"
	}
	var sum [3]int
	for _, op := range ops {
		rgb := operationColors[op.Source.Type()]
		for i := range sum {
			sum[i] += rgb[i]
		}
	}
	n := float64(len(ops))
	return fmt.Sprintf("%02x%02x%02x",
		int(math.Round(float64(sum[0])/n)),
		int(math.Round(float64(sum[1])/n)),
		int(math.Round(float64(sum[2])/n)))
}
