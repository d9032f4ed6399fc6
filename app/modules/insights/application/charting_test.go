package insightsservice

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
)

func TestGenerateScoreTrendChart(t *testing.T) {
	rounds := []roundtypes.Round{
		{DatePlayed: "2026-08-15", TotalScore: 82},
		{DatePlayed: "2026-08-01", TotalScore: 88},
		{DatePlayed: "2026-07-20", TotalScore: 91},
	}

	data, err := GenerateScoreTrendChart(rounds)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 400, img.Bounds().Dy())
}

func TestGenerateScoreTrendChart_Placeholder(t *testing.T) {
	tests := []struct {
		name   string
		rounds []roundtypes.Round
	}{
		{name: "no rounds", rounds: nil},
		{name: "one round", rounds: []roundtypes.Round{
			{DatePlayed: "2026-08-15", TotalScore: 82},
		}},
		{name: "no parseable dates", rounds: []roundtypes.Round{
			{DatePlayed: "last tuesday", TotalScore: 82},
			{DatePlayed: "who knows", TotalScore: 90},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := GenerateScoreTrendChart(tt.rounds)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			require.Equal(t, 400, img.Bounds().Dx())
			require.Equal(t, 200, img.Bounds().Dy())
		})
	}
}

func TestGenerateScoreTrendChart_SkipsBadDates(t *testing.T) {
	data, err := GenerateScoreTrendChart([]roundtypes.Round{
		{DatePlayed: "2026-08-15", TotalScore: 82},
		{DatePlayed: "yesterday", TotalScore: 100},
		{DatePlayed: "2026-08-01", TotalScore: 88},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
