package insights

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fokusly/fokusly/internal/rest"
	log "github.com/sirupsen/logrus"
)

type StatsDTO struct {
	Range         string         `json:"range"`
	StartDate     string         `json:"startDate,omitempty"`
	EndDate       string         `json:"endDate,omitempty"`
	TotalSessions int            `json:"totalSessions"`
	TotalMinutes  int            `json:"totalMinutes"`
	ActiveDays    int            `json:"activeDays"`
	TotalDays     int            `json:"totalDays"`
	Delta         ComparisonDTO  `json:"delta"`
	CurrentStreak int            `json:"currentStreak"`
	LongestStreak int            `json:"longestStreak"`
	Chart         []ChartDTO     `json:"chart"`
	Suggestions   []string       `json:"suggestions"`
	Detail        StatsDetailDTO `json:"detail"`
}

type ComparisonDTO struct {
	Sessions int `json:"sessions"`
	Minutes  int `json:"minutes"`
}

type ChartDTO struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Date  string `json:"date"`
}

type StatsDetailDTO struct {
	Best           BestRecordsDTO    `json:"best"`
	TopSubjects    []SubjectDTO      `json:"topSubjects"`
	Quality        QualityDTO        `json:"quality"`
	Completion     CompletionDTO     `json:"completion"`
	PlanCompletion PlanCompletionDTO `json:"planCompletion"`
	TimeSlots      TimeSlotsDTO      `json:"timeSlots"`
	Progress       ProgressDTO       `json:"progress"`
	Heatmap        []HeatmapCellDTO  `json:"heatmap,omitempty"`
	Goals          *GoalProgressDTO  `json:"goals,omitempty"`
	Achievements   []AchievementDTO  `json:"achievements,omitempty"`
}

type BestRecordsDTO struct {
	Day   *BestDayDTO   `json:"day,omitempty"`
	Week  *BestWeekDTO  `json:"week,omitempty"`
	Month *BestMonthDTO `json:"month,omitempty"`
}

type BestDayDTO struct {
	Date     string `json:"date"`
	Minutes  int    `json:"minutes"`
	Sessions int    `json:"sessions"`
}

type BestWeekDTO struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Minutes   int    `json:"minutes"`
	Sessions  int    `json:"sessions"`
}

type BestMonthDTO struct {
	Month    string `json:"month"`
	Minutes  int    `json:"minutes"`
	Sessions int    `json:"sessions"`
}

type SubjectDTO struct {
	Subject    string `json:"subject"`
	Minutes    int    `json:"minutes"`
	Sessions   int    `json:"sessions"`
	Percentage int    `json:"percentage"`
}

type QualityDTO struct {
	TotalSessions    int `json:"totalSessions"`
	Short            int `json:"short"`
	Standard         int `json:"standard"`
	Long             int `json:"long"`
	CompletionRate   int `json:"completionRate"`
	InterruptionRate int `json:"interruptionRate"`
}

type CompletionDTO struct {
	Total   int `json:"total"`
	Average int `json:"average"`
	Perfect int `json:"perfect"`
	High    int `json:"high"`
	Medium  int `json:"medium"`
	Low     int `json:"low"`
}

type PlanCompletionDTO struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

type TimeSlotsDTO struct {
	Morning   SlotDTO `json:"morning"`
	Afternoon SlotDTO `json:"afternoon"`
	Evening   SlotDTO `json:"evening"`
}

type SlotDTO struct {
	Count     int `json:"count"`
	Completed int `json:"completed"`
}

type ProgressDTO struct {
	PlanCount      int     `json:"planCount"`
	OverallPercent int     `json:"overallPercent"`
	AvgPomodoros   float64 `json:"avgPomodoros"`
}

type HeatmapCellDTO struct {
	Date       string `json:"date"`
	DayOfMonth int    `json:"dayOfMonth"`
	Minutes    int    `json:"minutes"`
	Sessions   int    `json:"sessions"`
	Tier       int    `json:"tier"`
}

type GoalProgressDTO struct {
	MinutesPercent  int `json:"minutesPercent"`
	SessionsPercent int `json:"sessionsPercent"`
}

type AchievementDTO struct {
	Id       string `json:"id"`
	Label    string `json:"label"`
	Unlocked bool   `json:"unlocked"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetStats godoc
// @Summary Get study analytics for a time range
// @Tags Insights
// @Produce json
// @Param range query string false "week|month|custom|lifetime (default week)"
// @Param from query string false "Custom range start YYYY-MM-DD"
// @Param to query string false "Custom range end YYYY-MM-DD"
// @Success 200 {object} StatsDTO
// @Failure 400 {object} rest.ErrorResponse "Unknown range"
// @Router /api/insights [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()
	kind := WindowKind(query.Get("range"))
	if kind == "" {
		kind = WindowWeek
	}
	switch kind {
	case WindowWeek, WindowMonth, WindowCustom, WindowLifetime:
	default:
		rest.WriteError(w, http.StatusBadRequest, "Unknown range",
			"range must be one of week, month, custom, lifetime")
		return
	}

	stats, err := h.service.GetStats(r.Context(), kind, query.Get("from"), query.Get("to"))
	if err != nil {
		if errors.Is(err, ErrInvalidWindow) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid window", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Tracef("Computed %s insights: %d sessions, %d minutes", kind, stats.TotalSessions, stats.TotalMinutes)

	if err := json.NewEncoder(w).Encode(statsToDTO(stats)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func statsToDTO(stats TimeRangeStats) StatsDTO {
	dto := StatsDTO{
		Range:         string(stats.Kind),
		TotalSessions: stats.TotalSessions,
		TotalMinutes:  stats.TotalMinutes,
		ActiveDays:    stats.ActiveDays,
		TotalDays:     stats.TotalDays,
		Delta:         ComparisonDTO(stats.Delta),
		CurrentStreak: stats.CurrentStreak,
		LongestStreak: stats.LongestStreak,
		Chart:         make([]ChartDTO, 0, len(stats.Chart)),
		Suggestions:   stats.Suggestions,
	}
	if dto.Suggestions == nil {
		dto.Suggestions = []string{}
	}
	if !stats.Window.IsZero() {
		dto.StartDate = DayKey(stats.Window.Start)
		dto.EndDate = DayKey(stats.Window.End)
	}
	for _, point := range stats.Chart {
		dto.Chart = append(dto.Chart, ChartDTO(point))
	}
	if stats.Detail != nil {
		dto.Detail = detailToDTO(*stats.Detail)
	}
	return dto
}

func detailToDTO(detail StatsDetail) StatsDetailDTO {
	dto := StatsDetailDTO{
		Quality:        QualityDTO(detail.Quality),
		Completion:     CompletionDTO(detail.Completion),
		PlanCompletion: PlanCompletionDTO(detail.PlanCompletion),
		TimeSlots: TimeSlotsDTO{
			Morning:   SlotDTO(detail.TimeSlots.Morning),
			Afternoon: SlotDTO(detail.TimeSlots.Afternoon),
			Evening:   SlotDTO(detail.TimeSlots.Evening),
		},
		Progress:    ProgressDTO(detail.Progress),
		TopSubjects: make([]SubjectDTO, 0, len(detail.TopSubjects)),
	}
	// zero-valued best records mean no history yet and stay null in JSON
	if detail.Best.Day.Sessions > 0 {
		day := BestDayDTO(detail.Best.Day)
		dto.Best.Day = &day
	}
	if detail.Best.Week.Sessions > 0 {
		week := BestWeekDTO(detail.Best.Week)
		dto.Best.Week = &week
	}
	if detail.Best.Month.Sessions > 0 {
		month := BestMonthDTO(detail.Best.Month)
		dto.Best.Month = &month
	}
	for _, subject := range detail.TopSubjects {
		dto.TopSubjects = append(dto.TopSubjects, SubjectDTO(subject))
	}
	for _, cell := range detail.Heatmap {
		dto.Heatmap = append(dto.Heatmap, HeatmapCellDTO(cell))
	}
	if detail.Goals != nil {
		goals := GoalProgressDTO(*detail.Goals)
		dto.Goals = &goals
	}
	for _, achievement := range detail.Achievements {
		dto.Achievements = append(dto.Achievements, AchievementDTO(achievement))
	}
	return dto
}
