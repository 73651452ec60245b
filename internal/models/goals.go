package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// Goal names a wellness category a user can work on during the program.
type Goal string

const (
	GoalSleep     Goal = "sleep"
	GoalStress    Goal = "stress"
	GoalDigestion Goal = "digestion"
	GoalEnergy    Goal = "energy"
	GoalSpiritual Goal = "spiritual"
	GoalImmunity  Goal = "immunity"
	GoalAnxiety   Goal = "anxiety"
	GoalHormonal  Goal = "hormonal"
	GoalGeneral   Goal = "general"
)

// AllGoals lists every known goal in canonical order.
var AllGoals = []Goal{
	GoalSleep,
	GoalStress,
	GoalDigestion,
	GoalEnergy,
	GoalSpiritual,
	GoalImmunity,
	GoalAnxiety,
	GoalHormonal,
	GoalGeneral,
}

// GoalTagSet is a sparse mapping from goal name to an active flag.
// A user may have several goals active at once.
type GoalTagSet map[Goal]bool

// Active returns the goals with a true flag, sorted alphabetically so callers
// get a stable order. Falls back to [general] when nothing is active.
func (s GoalTagSet) Active() []Goal {
	var out []Goal
	for g, on := range s {
		if on {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return []Goal{GoalGeneral}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Has reports whether the goal is active in the set.
func (s GoalTagSet) Has(g Goal) bool {
	return s[g]
}

// Value serializes the tag set as JSON for a jsonb column.
func (s GoalTagSet) Value() (driver.Value, error) {
	if s == nil {
		s = GoalTagSet{}
	}
	return json.Marshal(s)
}

// Scan restores the tag set from a jsonb column.
func (s *GoalTagSet) Scan(src interface{}) error {
	if src == nil {
		*s = GoalTagSet{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("goal tags: unsupported scan type %T", src)
	}
	if len(data) == 0 {
		*s = GoalTagSet{}
		return nil
	}
	return json.Unmarshal(data, s)
}
