package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("work session not found")

// WorkSession is an immutable record of a logged work interval. Sessions are
// never updated after creation; they only disappear when their owner is
// deleted.
type WorkSession struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	WorkDate  time.Time `json:"work_date" bson:"work_date"`
	Hours     float64   `json:"hours" bson:"hours"`
	StartTime time.Time `json:"start_time" bson:"start_time"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// DayKey returns the session's calendar day in YYYY-MM-DD form, used when
// grouping sessions by day.
func (s *WorkSession) DayKey() string {
	return s.WorkDate.Format("2006-01-02")
}

// StartMinute returns the clock start time as minutes since midnight.
func (s *WorkSession) StartMinute() int {
	return s.StartTime.Hour()*60 + s.StartTime.Minute()
}

// IsWeekend reports whether the session's work date falls on a Saturday or
// Sunday.
func (s *WorkSession) IsWeekend() bool {
	wd := s.WorkDate.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
