package domain

// Badge is a derived achievement descriptor. Badges are never persisted;
// they are recomputed from the user's full history on every read.
type Badge struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Icon            string  `json:"icon"`
	Unlocked        bool    `json:"unlocked"`
	CurrentProgress float64 `json:"current_progress"`
	TargetProgress  float64 `json:"target_progress"`
}

// AchievementReport is the full badge catalog for one user plus the number
// of unlocked badges.
type AchievementReport struct {
	Badges        []Badge `json:"badges"`
	UnlockedCount int     `json:"unlocked_count"`
}
