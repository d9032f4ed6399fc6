package scorecardservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDatePlayed(t *testing.T) {
	now := time.Date(2026, time.May, 4, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "canonical passthrough", raw: "2026-04-18", want: "2026-04-18"},
		{name: "us slash format", raw: "04/18/2026", want: "2026-04-18"},
		{name: "written out", raw: "April 18, 2026", want: "2026-04-18"},
		{name: "empty defaults to today", raw: "", want: "2026-05-04"},
		{name: "garbage defaults to today", raw: "????", want: "2026-05-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeDatePlayed(tt.raw, now))
		})
	}
}
