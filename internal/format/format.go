// Package format renders timetable data as Slack mrkdwn. Day and parity
// display names live here and nowhere else.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
)

const displayDate = "02.01.2006"

var dayNames = map[domain.Day]string{
	domain.Monday:    "Monday",
	domain.Tuesday:   "Tuesday",
	domain.Wednesday: "Wednesday",
	domain.Thursday:  "Thursday",
	domain.Friday:    "Friday",
	domain.Saturday:  "Saturday",
	domain.Sunday:    "Sunday",
}

var parityNames = map[domain.Parity]string{
	domain.ParityUpper: "upper",
	domain.ParityLower: "lower",
}

func DayName(d domain.Day) string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("day %d", int(d))
}

func ParityName(p domain.Parity) string {
	if name, ok := parityNames[p]; ok {
		return name
	}
	return string(p)
}

func Date(t time.Time) string {
	return t.Format(displayDate)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DailyPost is the automatic morning message
func DailyPost(s *entity.DaySchedule) string {
	return fmt.Sprintf("*📅 SCHEDULE FOR TODAY*\n(%s, %s week)\n\n%s\n\n_Automatic message • %s_",
		DayName(s.Day), ParityName(s.Parity), s.Text, Date(s.Date))
}

func Today(s *entity.DaySchedule) string {
	return fmt.Sprintf("*📅 SCHEDULE FOR TODAY*\n(%s, %s week)\n\n%s", DayName(s.Day), ParityName(s.Parity), s.Text)
}

func Tomorrow(s *entity.DaySchedule) string {
	return fmt.Sprintf("*📅 SCHEDULE FOR TOMORROW*\n(%s, %s week)\n\n%s", DayName(s.Day), ParityName(s.Parity), s.Text)
}

// Overview shows the current parity first and, for weekdays, the other one
func Overview(o *entity.DayOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*📅 SCHEDULE FOR %s*\n\n", strings.ToUpper(DayName(o.Current.Day)))
	fmt.Fprintf(&b, "*%s week:*\n%s", capitalize(ParityName(o.Current.Parity)), o.Current.Text)
	if o.Other != nil {
		fmt.Fprintf(&b, "\n\n*%s week:*\n%s", capitalize(ParityName(o.Other.Parity)), o.Other.Text)
	}
	return b.String()
}

func Week(w *entity.WeekInfo) string {
	return fmt.Sprintf("*📊 WEEK INFO*\n\n• *Current week:* %s\n• *Next week:* %s\n• *Semester start:* %s\n• *Today:* %s",
		capitalize(ParityName(w.Current)), capitalize(ParityName(w.Next)), Date(w.Epoch), Date(w.Today))
}

func Announcement(text string) string {
	return fmt.Sprintf("*📢 ANNOUNCEMENT*\n\n%s\n\n<!channel>", text)
}
