package service

import (
	"math"

	"github.com/pokework/pokework-api/internal/core/domain"
)

const (
	earlyBirdMinute = 8 * 60  // 08:00
	nightOwlMinute  = 22 * 60 // 22:00
)

// EvaluateBadges is the stateless achievement evaluator: a pure function
// over a snapshot of the user's sessions, quests, and Pokemon (nil when the
// user has none). It returns the fixed 15-badge catalog; each badge is
// judged independently.
func EvaluateBadges(sessions []*domain.WorkSession, quests []*domain.Quest, pokemon *domain.Pokemon) *domain.AchievementReport {
	var completedQuests int
	for _, q := range quests {
		if q.Completed {
			completedQuests++
		}
	}

	level, totalXP := 1, 0
	if pokemon != nil {
		level, totalXP = pokemon.Level, pokemon.TotalXP
	}

	var earlyBird, nightOwl, weekend bool
	var maxSessionHours float64
	dailyHours := make(map[string]float64)
	dailySessions := make(map[string]int)
	for _, s := range sessions {
		minute := s.StartMinute()
		if minute < earlyBirdMinute {
			earlyBird = true
		}
		if minute > nightOwlMinute {
			nightOwl = true
		}
		if s.IsWeekend() {
			weekend = true
		}
		if s.Hours > maxSessionHours {
			maxSessionHours = s.Hours
		}
		dailyHours[s.DayKey()] += s.Hours
		dailySessions[s.DayKey()]++
	}

	var maxDailyHours float64
	for _, h := range dailyHours {
		if h > maxDailyHours {
			maxDailyHours = h
		}
	}
	var maxDailySessions int
	for _, n := range dailySessions {
		if n > maxDailySessions {
			maxDailySessions = n
		}
	}

	badges := []domain.Badge{
		boolBadge(1, "First Steps", "Log your first work session", "👟", len(sessions) > 0),
		boolBadge(2, "Early Bird", "Start working before 8 AM", "🌅", earlyBird),
		boolBadge(3, "Night Owl", "Work late at night (past 10 PM)", "🦉", nightOwl),
		progressBadge(4, "Marathon Runner", "Work 8 hours in one day", "🏃", maxDailyHours, 8),
		progressBadge(5, "XP Specialist", "Earn 500 total XP", "💎", float64(totalXP), 500),
		progressBadge(6, "Level Up!", "Reach Level 10", "⭐", float64(level), 10),
		progressBadge(7, "Apprentice", "Complete 5 adventurous quests", "⚔️", float64(completedQuests), 5),
		progressBadge(8, "Journeyman", "Complete 15 adventurous quests", "🛡️", float64(completedQuests), 15),
		progressBadge(9, "Master Strategist", "Complete 30 adventurous quests", "🏰", float64(completedQuests), 30),
		boolBadge(10, "Weekend Warrior", "Log work on a Saturday or Sunday", "🎮", weekend),
		progressBadge(11, "Power Hour", "Log a single session of 3+ hours", "⚡", maxSessionHours, 3),
		progressBadge(12, "Workhorse", "Log 10 total work sessions", "🐴", float64(len(sessions)), 10),
		progressBadge(13, "Centurion", "Accumulate 1000 total XP", "💯", float64(totalXP), 1000),
		progressBadge(14, "Elite Trainer", "Reach Level 20", "🔥", float64(level), 20),
		progressBadge(15, "Daily Grind", "Log 3 separate sessions in one day", "☕", float64(maxDailySessions), 3),
	}

	unlocked := 0
	for _, b := range badges {
		if b.Unlocked {
			unlocked++
		}
	}

	return &domain.AchievementReport{Badges: badges, UnlockedCount: unlocked}
}

func boolBadge(id int, name, description, icon string, unlocked bool) domain.Badge {
	progress := 0.0
	if unlocked {
		progress = 1
	}
	return domain.Badge{
		ID:              id,
		Name:            name,
		Description:     description,
		Icon:            icon,
		Unlocked:        unlocked,
		CurrentProgress: progress,
		TargetProgress:  1,
	}
}

func progressBadge(id int, name, description, icon string, current, target float64) domain.Badge {
	return domain.Badge{
		ID:              id,
		Name:            name,
		Description:     description,
		Icon:            icon,
		Unlocked:        current >= target,
		CurrentProgress: math.Min(current, target),
		TargetProgress:  target,
	}
}
