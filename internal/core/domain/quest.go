package domain

import (
	"errors"
	"time"
)

var ErrQuestNotFound = errors.New("quest not found")
var ErrQuestAlreadyCompleted = errors.New("quest already completed")

// Quest is a task the user commits to. A quest moves from pending to
// completed exactly once; EarnedXP is only meaningful once Completed is set.
type Quest struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"user_id" bson:"user_id"`
	Title      string    `json:"title" bson:"title"`
	Difficulty string    `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Completed  bool      `json:"completed" bson:"completed"`
	EarnedXP   int       `json:"earned_xp" bson:"earned_xp"`
	GoalID     string    `json:"goal_id,omitempty" bson:"goal_id,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
