package roundservice

import (
	"testing"

	"github.com/stretchr/testify/require"

	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name   string
		rounds []roundtypes.Round
		want   roundtypes.RoundStats
	}{
		{
			name:   "no rounds",
			rounds: nil,
			want:   roundtypes.RoundStats{},
		},
		{
			name: "single round",
			rounds: []roundtypes.Round{
				{TotalScore: 85, TotalPutts: 32, TotalGIR: 9},
			},
			want: roundtypes.RoundStats{Rounds: 1, AvgScore: 85, AvgPutts: 32, GIRPercentage: 50},
		},
		{
			name: "putt average skips rounds without putt data",
			rounds: []roundtypes.Round{
				{TotalScore: 90, TotalPutts: 36, TotalGIR: 3},
				{TotalScore: 88, TotalPutts: 0, TotalGIR: 6},
			},
			want: roundtypes.RoundStats{Rounds: 2, AvgScore: 89, AvgPutts: 36, GIRPercentage: 25},
		},
		{
			name: "no putt data at all",
			rounds: []roundtypes.Round{
				{TotalScore: 92, TotalGIR: 2},
				{TotalScore: 96, TotalGIR: 1},
			},
			want: roundtypes.RoundStats{Rounds: 2, AvgScore: 94, AvgPutts: 0, GIRPercentage: 8},
		},
		{
			name: "gir percentage rounds to nearest",
			rounds: []roundtypes.Round{
				{TotalScore: 80, TotalPutts: 30, TotalGIR: 5},
			},
			// 5 of 18 greens is 27.8%.
			want: roundtypes.RoundStats{Rounds: 1, AvgScore: 80, AvgPutts: 30, GIRPercentage: 28},
		},
		{
			name: "averages round half up",
			rounds: []roundtypes.Round{
				{TotalScore: 85, TotalPutts: 30, TotalGIR: 9},
				{TotalScore: 86, TotalPutts: 31, TotalGIR: 9},
			},
			want: roundtypes.RoundStats{Rounds: 2, AvgScore: 86, AvgPutts: 31, GIRPercentage: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeStats(tt.rounds))
		})
	}
}
