package career

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Positions is the fixed vocabulary of position codes, in pitch order from
// goal to attack. Roster order within a position group is insertion order.
var Positions = []string{
	"GK",
	"CB", "LB", "RB", "LWB", "RWB",
	"CDM", "CM", "CAM", "LM", "RM",
	"ST", "CF", "LW", "RW",
}

// ValidPosition reports whether code is part of the position vocabulary.
func ValidPosition(code string) bool {
	return slices.Contains(Positions, code)
}

// Player is one member of the squad.
type Player struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Age         int       `json:"age"`
	Overall     int       `json:"overall"`
	Nationality string    `json:"nationality"`
	Value       int64     `json:"value"`
	Wage        int64     `json:"wage"`
	IsHomegrown bool      `json:"isHomegrown"`
	IsNonEU     bool      `json:"isNonEU"`
	IsOnLoan    bool      `json:"isOnLoan"`
}

// SquadStats are the aggregated statistics over the active squad. Players
// on loan are not part of the active squad.
type SquadStats struct {
	SquadSize      int     `json:"squadSize"`
	AverageAge     float64 `json:"averageAge"`
	AverageOverall float64 `json:"averageOverall"`
	Homegrown      int     `json:"homegrown"`
	NonEU          int     `json:"nonEU"`
	Over22         int     `json:"over22"`
}

// ActiveSquad returns all players that are not on loan.
func (c Career) ActiveSquad() []Player {
	squad := make([]Player, 0, len(c.Players))
	for _, p := range c.Players {
		if p.IsOnLoan {
			continue
		}
		squad = append(squad, p)
	}

	return squad
}

// Stats computes the active-squad statistics.
func (c Career) Stats() SquadStats {
	squad := c.ActiveSquad()

	stats := SquadStats{SquadSize: len(squad)}
	if len(squad) == 0 {
		return stats
	}

	var ageSum, overallSum int
	for _, p := range squad {
		ageSum += p.Age
		overallSum += p.Overall

		if p.IsHomegrown {
			stats.Homegrown++
		}
		if p.IsNonEU {
			stats.NonEU++
		}
		if p.Age > 22 {
			stats.Over22++
		}
	}

	stats.AverageAge = float64(ageSum) / float64(len(squad))
	stats.AverageOverall = float64(overallSum) / float64(len(squad))

	return stats
}
