package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	stats    TimeRangeStats
	err      error
	lastKind WindowKind
	lastFrom string
	lastTo   string
}

func (s *stubService) GetStats(ctx context.Context, kind WindowKind, customStart string, customEnd string) (TimeRangeStats, error) {
	s.lastKind = kind
	s.lastFrom = customStart
	s.lastTo = customEnd
	return s.stats, s.err
}

func TestHandler_GetStats(t *testing.T) {
	service := &stubService{stats: TimeRangeStats{
		Kind:          WindowWeek,
		Window:        WindowFor(WindowWeek, day("2025-03-10"), "", "", nil),
		TotalSessions: 3,
		TotalMinutes:  100,
		Detail:        &StatsDetail{},
	}}
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/insights?range=week", nil)
	recorder := httptest.NewRecorder()
	handler.GetStats(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, WindowWeek, service.lastKind)

	var dto StatsDTO
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dto))
	assert.Equal(t, "week", dto.Range)
	assert.Equal(t, 3, dto.TotalSessions)
	assert.Equal(t, "2025-03-04", dto.StartDate)
	assert.Equal(t, "2025-03-10", dto.EndDate)
	assert.NotNil(t, dto.Suggestions)
}

func TestHandler_GetStats_DefaultsToWeek(t *testing.T) {
	service := &stubService{stats: TimeRangeStats{Kind: WindowWeek, Detail: &StatsDetail{}}}
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/insights", nil)
	recorder := httptest.NewRecorder()
	handler.GetStats(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, WindowWeek, service.lastKind)
}

func TestHandler_GetStats_PassesCustomRange(t *testing.T) {
	service := &stubService{stats: TimeRangeStats{Kind: WindowCustom, Detail: &StatsDetail{}}}
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/insights?range=custom&from=2025-01-01&to=2025-01-31", nil)
	recorder := httptest.NewRecorder()
	handler.GetStats(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, WindowCustom, service.lastKind)
	assert.Equal(t, "2025-01-01", service.lastFrom)
	assert.Equal(t, "2025-01-31", service.lastTo)
}

func TestHandler_GetStats_RejectsUnknownRange(t *testing.T) {
	handler := NewHandler(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/insights?range=decade", nil)
	recorder := httptest.NewRecorder()
	handler.GetStats(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Unknown range")
}
