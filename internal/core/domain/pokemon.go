package domain

import "errors"

// EvolutionStage is the coarse display tier derived from level.
type EvolutionStage string

const (
	StageEgg       EvolutionStage = "Egg"
	StageBasic     EvolutionStage = "Basic"
	StageOne       EvolutionStage = "Stage 1"
	StageTwo       EvolutionStage = "Stage 2"
	StageLegendary EvolutionStage = "Legendary"
)

// xpPerLevel is the fixed XP cost of a level; the curve is not configurable.
const xpPerLevel = 100

var ErrPokemonNotFound = errors.New("pokemon not found")

// Pokemon is the per-user progression snapshot: level, XP counters, and the
// evolution stage derived from level.
type Pokemon struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	UserID         string         `json:"user_id" bson:"user_id"`
	Name           string         `json:"name" bson:"name"`
	Level          int            `json:"level" bson:"level"`
	CurrentXP      int            `json:"current_xp" bson:"current_xp"`
	TotalXP        int            `json:"total_xp" bson:"total_xp"`
	EvolutionStage EvolutionStage `json:"evolution_stage" bson:"evolution_stage"`
}

// NewPokemon returns a freshly hatched progression snapshot for a user.
func NewPokemon(userID, name string) *Pokemon {
	return &Pokemon{
		UserID:         userID,
		Name:           name,
		Level:          1,
		CurrentXP:      0,
		TotalXP:        0,
		EvolutionStage: StageEgg,
	}
}

// StageForLevel maps a level to its evolution stage. Boundaries are
// inclusive-lower / exclusive-upper.
func StageForLevel(level int) EvolutionStage {
	switch {
	case level < 5:
		return StageEgg
	case level < 16:
		return StageBasic
	case level < 32:
		return StageOne
	case level < 50:
		return StageTwo
	default:
		return StageLegendary
	}
}

// ApplyXP is the leveling rule. It adds earnedXP to both counters, converts
// every full 100 points of current XP into one level (a single large grant
// can trigger several level-ups), and recomputes the evolution stage.
// Afterwards 0 <= CurrentXP < 100 always holds.
func (p *Pokemon) ApplyXP(earnedXP int) {
	p.TotalXP += earnedXP
	p.CurrentXP += earnedXP

	for p.CurrentXP >= xpPerLevel {
		p.CurrentXP -= xpPerLevel
		p.Level++
	}

	p.EvolutionStage = StageForLevel(p.Level)
}
