package insights

import (
	"testing"

	"github.com/fokusly/fokusly/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestFindBestRecords_BestDay(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-01", 100),
		rec("2025-01-01", 100),
		rec("2025-01-02", 150),
	}

	best := FindBestRecords(sessions)

	assert.Equal(t, "2025-01-01", best.Day.Date)
	assert.Equal(t, 200, best.Day.Minutes)
	assert.Equal(t, 2, best.Day.Sessions)
}

func TestFindBestRecords_BestDayTieResolvesToEarliest(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-05", 100),
		rec("2025-01-02", 100),
	}

	best := FindBestRecords(sessions)

	assert.Equal(t, "2025-01-02", best.Day.Date)
}

func TestFindBestRecords_BestWeekFindsDensestTrailingWindow(t *testing.T) {
	// given a 400-minute cluster and a lighter 200-minute day elsewhere
	sessions := []session.FocusSession{
		rec("2025-01-01", 200),
		rec("2025-02-01", 100),
		rec("2025-02-02", 100),
		rec("2025-02-03", 100),
		rec("2025-02-04", 100),
	}

	// when
	best := FindBestRecords(sessions)

	// then the 7-day trailing window ending on the cluster's last day wins
	assert.Equal(t, 400, best.Week.Minutes)
	assert.Equal(t, 4, best.Week.Sessions)
	assert.Equal(t, "2025-01-29", best.Week.StartDate)
	assert.Equal(t, "2025-02-04", best.Week.EndDate)
}

func TestFindBestRecords_BestMonth(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-10", 200),
		rec("2025-02-01", 150),
		rec("2025-02-20", 150),
	}

	best := FindBestRecords(sessions)

	assert.Equal(t, "2025-02", best.Month.Month)
	assert.Equal(t, 300, best.Month.Minutes)
	assert.Equal(t, 2, best.Month.Sessions)
}

func TestFindBestRecords_EmptyHistoryStaysZero(t *testing.T) {
	best := FindBestRecords(nil)

	assert.Equal(t, BestRecords{}, best)
}
