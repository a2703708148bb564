package game

import "math/rand"

// natureEffect records which stat a nature boosts (x1.1) and which it
// hinders (x0.9). Neutral natures leave both empty.
type natureEffect struct {
	up   string
	down string
}

// natureTable is the fixed set of 25 natures.
var natureTable = map[string]natureEffect{
	"hardy":   {},
	"lonely":  {up: StatAtk, down: StatDef},
	"brave":   {up: StatAtk, down: StatSpe},
	"adamant": {up: StatAtk, down: StatSpa},
	"naughty": {up: StatAtk, down: StatSpd},
	"bold":    {up: StatDef, down: StatAtk},
	"docile":  {},
	"relaxed": {up: StatDef, down: StatSpe},
	"impish":  {up: StatDef, down: StatSpa},
	"lax":     {up: StatDef, down: StatSpd},
	"timid":   {up: StatSpe, down: StatAtk},
	"hasty":   {up: StatSpe, down: StatDef},
	"serious": {},
	"jolly":   {up: StatSpe, down: StatSpa},
	"naive":   {up: StatSpe, down: StatSpd},
	"modest":  {up: StatSpa, down: StatAtk},
	"mild":    {up: StatSpa, down: StatDef},
	"quiet":   {up: StatSpa, down: StatSpe},
	"bashful": {},
	"rash":    {up: StatSpa, down: StatSpd},
	"calm":    {up: StatSpd, down: StatAtk},
	"gentle":  {up: StatSpd, down: StatDef},
	"sassy":   {up: StatSpd, down: StatSpe},
	"careful": {up: StatSpd, down: StatSpa},
	"quirky":  {},
}

// NatureModifier returns the multiplier a nature applies to a stat key:
// 1.1 for the boosted stat, 0.9 for the hindered one, 1.0 otherwise.
// Unknown natures are treated as neutral.
func NatureModifier(nature, stat string) float64 {
	eff, ok := natureTable[nature]
	if !ok {
		return 1.0
	}
	switch stat {
	case eff.up:
		return 1.1
	case eff.down:
		return 0.9
	}
	return 1.0
}

// ValidNature reports whether the name is one of the 25 natures.
func ValidNature(nature string) bool {
	_, ok := natureTable[nature]
	return ok
}

// NatureNames returns all nature names (unspecified order).
func NatureNames() []string {
	out := make([]string, 0, len(natureTable))
	for n := range natureTable {
		out = append(out, n)
	}
	return out
}

// RandomNature picks a nature uniformly at random, used for wild spawns
// and starters.
func RandomNature() string {
	names := NatureNames()
	return names[rand.Intn(len(names))]
}
