// Package scoring holds the pure heuristics the platform uses to rate users and listings.
package scoring

import (
	"math"

	"github.com/GlebRadaev/trueqia/internal/domain"
)

type Level string

const (
	LevelNew       Level = "new"
	LevelLow       Level = "low"
	LevelTrusted   Level = "trusted"
	LevelExcellent Level = "excellent"
)

const neutralScore = 50

type Reputation struct {
	Score int
	Level Level
}

// ReputationOf rates a user by how their resolved trades ended.
// Pending trades do not count. A cancellation weighs half a rejection.
func ReputationOf(stats domain.TradeStats) Reputation {
	total := stats.Accepted + stats.Rejected + stats.Cancelled
	if total == 0 {
		return Reputation{Score: neutralScore, Level: LevelNew}
	}

	balance := float64(stats.Accepted) - float64(stats.Rejected) - float64(stats.Cancelled)/2
	score := int(math.Round(neutralScore + neutralScore*balance/float64(total)))
	score = max(0, min(100, score))

	return Reputation{Score: score, Level: levelFor(score)}
}

func levelFor(score int) Level {
	switch {
	case score < 40:
		return LevelLow
	case score < 80:
		return LevelTrusted
	default:
		return LevelExcellent
	}
}
