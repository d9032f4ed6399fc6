package insightsservice

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
)

// ScoreTrendChart renders the user's score history as a PNG line chart,
// oldest round first.
func (s *InsightsService) ScoreTrendChart(ctx context.Context, userID int64) ([]byte, error) {
	rounds, err := s.rounds.ListRounds(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("trend chart: %w", err)
	}
	return GenerateScoreTrendChart(rounds)
}

// GenerateScoreTrendChart produces a PNG line chart of total scores over
// time. Rounds are expected most recent first; rounds whose date cannot be
// parsed are skipped.
func GenerateScoreTrendChart(rounds []roundtypes.Round) ([]byte, error) {
	var xValues []time.Time
	var yValues []float64
	for i := len(rounds) - 1; i >= 0; i-- {
		played, err := time.Parse("2006-01-02", rounds[i].DatePlayed)
		if err != nil {
			continue
		}
		xValues = append(xValues, played)
		yValues = append(yValues, float64(rounds[i].TotalScore))
	}

	if len(xValues) < 2 {
		return renderNoDataPlaceholder()
	}

	mainSeries := chart.TimeSeries{
		Name:    "Total Score",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2d6a4f"),
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    drawing.ColorFromHex("d4a017"),
		},
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name: "Score",
		},
		Series: []chart.Series{mainSeries},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "Not enough rounds for a trend"
	)

	// go-chart refuses to render without a series, so carry a transparent
	// one behind the message.
	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Style: chart.Style{Hidden: true}},
		YAxis:  chart.YAxis{Style: chart.Style{Hidden: true}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
					DotColor:    drawing.ColorTransparent,
				},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
