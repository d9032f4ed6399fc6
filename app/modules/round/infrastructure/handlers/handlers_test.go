package roundhandlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	roundservice "github.com/greenside-labs/greenside/app/modules/round/application"
	roundtypes "github.com/greenside-labs/greenside/app/modules/round/domain/types"
	userauth "github.com/greenside-labs/greenside/app/modules/user/infrastructure/auth"
	"github.com/greenside-labs/greenside/app/shared/results"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(userauth.WithUserID(req.Context(), 42))
}

func TestSaveRound_Created(t *testing.T) {
	saved := roundtypes.Round{ID: uuid.New(), UserID: 42, TotalScore: 85}
	svc := &fakeService{
		saveResult: results.SuccessResult[roundtypes.Round, roundservice.SaveRoundFailure](saved),
	}
	h := NewRoundHandlers(svc, testLogger())

	body, err := json.Marshal(map[string]any{"total_score": 85})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.SaveRound(rec, authedRequest(http.MethodPost, "/rounds", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got roundtypes.Round
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, saved.ID, got.ID)
}

func TestSaveRound_FailureIsUnprocessable(t *testing.T) {
	svc := &fakeService{
		saveResult: results.FailureResult[roundtypes.Round](roundservice.SaveRoundFailure{Reason: "course does not exist"}),
	}
	h := NewRoundHandlers(svc, testLogger())

	rec := httptest.NewRecorder()
	h.SaveRound(rec, authedRequest(http.MethodPost, "/rounds", []byte(`{}`)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var failure roundservice.SaveRoundFailure
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&failure))
	require.Equal(t, "course does not exist", failure.Reason)
}

func TestSaveRound_BadBody(t *testing.T) {
	h := NewRoundHandlers(&fakeService{}, testLogger())

	rec := httptest.NewRecorder()
	h.SaveRound(rec, authedRequest(http.MethodPost, "/rounds", []byte("{not json")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveRound_Unauthenticated(t *testing.T) {
	h := NewRoundHandlers(&fakeService{}, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rounds", bytes.NewReader([]byte(`{}`)))
	h.SaveRound(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetRound_NotFound(t *testing.T) {
	h := NewRoundHandlers(&fakeService{}, testLogger())
	router := chi.NewRouter()
	router.Get("/rounds/{roundID}", h.GetRound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/rounds/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRound_InvalidID(t *testing.T) {
	h := NewRoundHandlers(&fakeService{}, testLogger())
	router := chi.NewRouter()
	router.Get("/rounds/{roundID}", h.GetRound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/rounds/not-a-uuid", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRound_NoContent(t *testing.T) {
	svc := &fakeService{}
	h := NewRoundHandlers(svc, testLogger())
	router := chi.NewRouter()
	router.Delete("/rounds/{roundID}", h.DeleteRound)

	roundID := uuid.New()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/rounds/"+roundID.String(), nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, roundID, svc.deletedID)
}

func TestStats_WindowValidation(t *testing.T) {
	h := NewRoundHandlers(&fakeService{stats: roundtypes.RoundStats{Rounds: 3}}, testLogger())

	rec := httptest.NewRecorder()
	h.Stats(rec, authedRequest(http.MethodGet, "/rounds/stats?window=abc", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Stats(rec, authedRequest(http.MethodGet, "/rounds/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats roundtypes.RoundStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	require.Equal(t, 3, stats.Rounds)
}

func TestExportRounds_Headers(t *testing.T) {
	h := NewRoundHandlers(&fakeService{export: []byte("workbook")}, testLogger())

	rec := httptest.NewRecorder()
	h.ExportRounds(rec, authedRequest(http.MethodGet, "/rounds/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "rounds.xlsx")
	require.Equal(t, "workbook", rec.Body.String())
}
