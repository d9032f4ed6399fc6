package roundservice

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
)

const exportSheet = "Rounds"

var exportHeader = []string{
	"Date Played", "Submission", "Total Score", "Total Putts", "Fairways Hit", "Greens in Regulation",
	"Front Nine", "Back Nine",
}

// ExportRounds renders all of a user's rounds as an XLSX workbook, one row
// per round, most recent first.
func (s *RoundService) ExportRounds(ctx context.Context, userID int64) ([]byte, error) {
	rounds, err := s.repo.ListRoundsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("export rounds: %w", err)
	}
	return BuildWorkbook(rounds)
}

// BuildWorkbook writes the rounds into an in-memory XLSX workbook.
func BuildWorkbook(rounds []roundtypes.Round) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i := range rounds {
		r := &rounds[i]
		row := []interface{}{
			r.DatePlayed,
			string(r.SubmissionType),
			r.TotalScore,
			r.TotalPutts,
			r.TotalFairwaysHit,
			r.TotalGIR,
			scoreLine(r.FrontNineScores),
			scoreLine(r.BackNineScores),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func scoreLine(scores []int) string {
	out := make([]byte, 0, len(scores)*3)
	for i, sc := range scores {
		if i > 0 {
			out = append(out, ' ')
		}
		out = strconv.AppendInt(out, int64(sc), 10)
	}
	return string(out)
}
