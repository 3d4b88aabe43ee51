package service

import "math"

// xpPerHour converts logged hours into experience points: one hour of work
// is worth 10 XP. The rate is fixed, not configurable.
const xpPerHour = 10

// maxXPPerGrant caps a single grant. Absurdly large hour values would
// otherwise convert out of integer range and flip negative, driving the
// progression counters backwards.
const maxXPPerGrant = math.MaxInt32

// xpForHours truncates fractional XP (2.55h -> 25 XP) and saturates at
// maxXPPerGrant. Hours are validated non-negative before this is called.
func xpForHours(hours float64) int {
	xp := hours * xpPerHour
	if xp >= maxXPPerGrant {
		return maxXPPerGrant
	}
	return int(xp)
}

// xpForQuest is the quest-completion variant: any nonzero effort yields at
// least 1 XP, so very short quests still count.
func xpForQuest(hours float64) int {
	xp := xpForHours(hours)
	if xp == 0 && hours > 0 {
		xp = 1
	}
	return xp
}
