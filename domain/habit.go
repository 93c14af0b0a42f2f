package domain

import "time"

// DayFormat is the calendar-day key used for habit check-ins. Day boundaries
// are computed in UTC everywhere so a check-in near midnight cannot land on
// different days depending on server locale.
const DayFormat = "2006-01-02"

// Day truncates t to its UTC calendar day string.
func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// Habit represents a recurring practice the user tracks daily.
type Habit struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Frequency      string    `json:"frequency"`
	Streak         int       `json:"streak"`
	CompletedDates []string  `json:"completed_dates"`
	CreatedAt      time.Time `json:"created_at"`
}

// DoneOn reports whether the habit was already checked in on the given day.
func (h *Habit) DoneOn(day string) bool {
	if h == nil {
		return false
	}
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// CheckIn applies one daily check-in at the given instant. A consecutive day
// extends the streak; any gap starts a new streak at 1 (a check-in always
// counts as day one). Returns ErrAlreadyCheckedIn when today is already
// recorded, leaving the habit untouched.
func (h *Habit) CheckIn(now time.Time) error {
	today := Day(now)
	if h.DoneOn(today) {
		return ErrAlreadyCheckedIn
	}
	yesterday := Day(now.UTC().AddDate(0, 0, -1))
	if h.DoneOn(yesterday) {
		h.Streak++
	} else {
		h.Streak = 1
	}
	h.CompletedDates = append(h.CompletedDates, today)
	return nil
}
