package format

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestDailyPost(t *testing.T) {
	got := DailyPost(&entity.DaySchedule{
		Day:    domain.Monday,
		Parity: domain.ParityLower,
		Date:   time.Date(2024, time.September, 9, 7, 0, 0, 0, time.UTC),
		Text:   "1. Math",
	})

	assert.Equal(t, "*📅 SCHEDULE FOR TODAY*\n(Monday, lower week)\n\n1. Math\n\n_Automatic message • 09.09.2024_", got)
}

func TestOverview(t *testing.T) {
	weekday := Overview(&entity.DayOverview{
		Current: entity.DaySchedule{Day: domain.Wednesday, Parity: domain.ParityUpper, Text: "Physics 101"},
		Other:   &entity.DaySchedule{Day: domain.Wednesday, Parity: domain.ParityLower, Text: domain.NotConfiguredText},
	})
	assert.Contains(t, weekday, "SCHEDULE FOR WEDNESDAY")
	assert.Contains(t, weekday, "*Upper week:*\nPhysics 101")
	assert.Contains(t, weekday, "*Lower week:*\n"+domain.NotConfiguredText)

	weekend := Overview(&entity.DayOverview{
		Current: entity.DaySchedule{Day: domain.Sunday, Parity: domain.ParityUpper, Text: "Rest"},
	})
	assert.NotContains(t, weekend, "Lower week")
}

func TestWeek(t *testing.T) {
	got := Week(&entity.WeekInfo{
		Current: domain.ParityLower,
		Next:    domain.ParityUpper,
		Epoch:   domain.DefaultEpoch,
		Today:   time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, got, "*Current week:* Lower")
	assert.Contains(t, got, "*Next week:* Upper")
	assert.Contains(t, got, "*Semester start:* 01.09.2024")
	assert.Contains(t, got, "*Today:* 09.09.2024")
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Sunday", DayName(domain.Sunday))
	assert.Equal(t, "day 9", DayName(domain.Day(9)))
	assert.Equal(t, "upper", ParityName(domain.ParityUpper))
}
