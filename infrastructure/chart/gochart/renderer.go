// ABOUTME: Bar chart renderer backed by go-chart
// ABOUTME: Draws a population series as a vertical PNG bar chart

package gochart

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"countrystats-api/core/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	maxBarWidth = 80
	axisName    = "Population count"
)

// BarColor fills every bar
var BarColor = drawing.Color{R: 79, G: 129, B: 189, A: 255}

// Renderer implements interfaces.ChartRenderer
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer producing width x height images. Non-positive
// dimensions fall back to the defaults.
func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{width: width, height: height}
}

// Render draws series as a bar chart and returns the PNG bytes
func (r *Renderer) Render(ctx context.Context, title string, series []domain.CityPopulation) ([]byte, error) {
	if len(series) == 0 {
		return nil, errors.New("gochart: empty series")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bars := make([]chart.Value, 0, len(series))
	var peak float64
	for _, entry := range series {
		v := float64(entry.Population)
		if v > peak {
			peak = v
		}
		bars = append(bars, chart.Value{
			Label: entry.City,
			Value: v,
			Style: chart.Style{
				FillColor:   BarColor,
				StrokeColor: BarColor,
			},
		})
	}
	if peak <= 0 {
		peak = 1
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: r.barWidth(len(bars)),
		YAxis: chart.YAxis{
			Name:           axisName,
			Range:          &chart.ContinuousRange{Min: 0, Max: peak * 1.1},
			ValueFormatter: formatPopulation,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("gochart: render %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// barWidth leaves roughly as much space between bars as the bars take up.
func (r *Renderer) barWidth(n int) int {
	w := (r.width - 100) / (2 * n)
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

func formatPopulation(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
