package domain

import (
	"errors"
	"strings"
)

var ErrGoalNotFound = errors.New("goal not found")

// Units with special progress-routing semantics. Any other unit is treated
// as a generic per-completion counter.
const (
	UnitHours = "hours"
	UnitXP    = "XP"
)

// Goal is a user-defined numeric target. CurrentValue only grows through
// progress events and may overshoot TargetValue.
type Goal struct {
	ID           string  `json:"id" bson:"_id,omitempty"`
	UserID       string  `json:"user_id" bson:"user_id"`
	Title        string  `json:"title" bson:"title"`
	CurrentValue float64 `json:"current_value" bson:"current_value"`
	TargetValue  float64 `json:"target_value" bson:"target_value"`
	Unit         string  `json:"unit" bson:"unit"`
	Color        string  `json:"color" bson:"color"`
}

// TracksHours reports whether the goal accumulates logged hours. The unit
// match is case-insensitive ("hours", "Hours", "HOURS" all qualify).
func (g *Goal) TracksHours() bool {
	return strings.EqualFold(g.Unit, UnitHours)
}

// TracksXP reports whether the goal accumulates earned XP.
func (g *Goal) TracksXP() bool {
	return strings.EqualFold(g.Unit, UnitXP)
}
