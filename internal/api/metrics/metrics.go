// Package metrics defines all custom Prometheus metrics for the PokeWork
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pokework"

// SessionsLoggedTotal counts recorded work sessions.
// Label:
//   - source: "manual" (direct log) or "quest" (created by quest completion)
var SessionsLoggedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_logged_total",
		Help:      "Total number of work sessions recorded, by source.",
	},
	[]string{"source"},
)

// XPGrantedTotal counts experience points applied through the leveling rule.
var XPGrantedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "xp_granted_total",
		Help:      "Total experience points granted across all users.",
	},
)

// LevelUpsTotal counts level transitions produced by the leveling rule.
var LevelUpsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "level_ups_total",
		Help:      "Total number of level-ups across all users.",
	},
)

// QuestsCompletedTotal counts quests that transitioned to completed.
var QuestsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quests_completed_total",
		Help:      "Total number of quests finished.",
	},
)

// GoalProgressTotal counts goal increments routed by the engine.
// Label:
//   - unit: "hours", "xp", or "count" for generic counters
var GoalProgressTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "goal_progress_total",
		Help:      "Total number of goal progress increments, by unit kind.",
	},
	[]string{"unit"},
)

// AchievementEvaluationDuration measures a full badge-catalog evaluation.
var AchievementEvaluationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "achievement_evaluation_duration_seconds",
		Help:      "Duration of a full achievement catalog evaluation.",
		Buckets:   prometheus.DefBuckets,
	},
)
