package game

// Type is one of the 18 elemental types.
type Type string

const (
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
	TypeDark     Type = "dark"
)

// typeChart holds the attacking-type -> defending-type multipliers.
// Absent entries mean neutral (1.0). Values are limited to
// {0, 0.5, 1, 2}; a 0 entry is an immunity and zeroes the total.
var typeChart = map[Type]map[Type]float64{
	TypeFire:     {TypeGrass: 2, TypeIce: 2, TypeBug: 2, TypeSteel: 2, TypeFire: 0.5, TypeWater: 0.5, TypeRock: 0.5, TypeDragon: 0.5},
	TypeWater:    {TypeFire: 2, TypeGround: 2, TypeRock: 2, TypeWater: 0.5, TypeGrass: 0.5, TypeDragon: 0.5},
	TypeGrass:    {TypeWater: 2, TypeGround: 2, TypeRock: 2, TypeFire: 0.5, TypeGrass: 0.5, TypePoison: 0.5, TypeFlying: 0.5, TypeBug: 0.5, TypeDragon: 0.5, TypeSteel: 0.5},
	TypeElectric: {TypeWater: 2, TypeFlying: 2, TypeElectric: 0.5, TypeGrass: 0.5, TypeDragon: 0.5, TypeGround: 0},
	TypeNormal:   {TypeRock: 0.5, TypeSteel: 0.5, TypeGhost: 0},
	TypeIce:      {TypeGrass: 2, TypeGround: 2, TypeFlying: 2, TypeDragon: 2, TypeFire: 0.5, TypeWater: 0.5, TypeIce: 0.5, TypeSteel: 0.5},
	TypeFighting: {TypeNormal: 2, TypeIce: 2, TypeRock: 2, TypeDark: 2, TypeSteel: 2, TypePoison: 0.5, TypeFlying: 0.5, TypePsychic: 0.5, TypeBug: 0.5, TypeFairy: 0.5, TypeGhost: 0},
	TypePoison:   {TypeGrass: 2, TypeFairy: 2, TypePoison: 0.5, TypeGround: 0.5, TypeRock: 0.5, TypeGhost: 0.5, TypeSteel: 0},
	TypeGround:   {TypeFire: 2, TypeElectric: 2, TypePoison: 2, TypeRock: 2, TypeSteel: 2, TypeGrass: 0.5, TypeBug: 0.5, TypeFlying: 0},
	TypeFlying:   {TypeGrass: 2, TypeFighting: 2, TypeBug: 2, TypeElectric: 0.5, TypeRock: 0.5, TypeSteel: 0.5},
	TypePsychic:  {TypeFighting: 2, TypePoison: 2, TypePsychic: 0.5, TypeSteel: 0.5, TypeDark: 0},
	TypeBug:      {TypeGrass: 2, TypePsychic: 2, TypeDark: 2, TypeFire: 0.5, TypeFighting: 0.5, TypePoison: 0.5, TypeFlying: 0.5, TypeGhost: 0.5, TypeSteel: 0.5, TypeFairy: 0.5},
	TypeRock:     {TypeFire: 2, TypeIce: 2, TypeFlying: 2, TypeBug: 2, TypeFighting: 0.5, TypeGround: 0.5, TypeSteel: 0.5},
	TypeGhost:    {TypePsychic: 2, TypeGhost: 2, TypeDark: 0.5, TypeNormal: 0},
	TypeDragon:   {TypeDragon: 2, TypeSteel: 0.5, TypeFairy: 0},
	TypeSteel:    {TypeIce: 2, TypeRock: 2, TypeFairy: 2, TypeFire: 0.5, TypeWater: 0.5, TypeElectric: 0.5, TypeSteel: 0.5},
	TypeFairy:    {TypeFighting: 2, TypeDragon: 2, TypeDark: 2, TypeFire: 0.5, TypePoison: 0.5, TypeSteel: 0.5},
	TypeDark:     {TypeGhost: 2, TypePsychic: 2, TypeFighting: 0.5, TypeDark: 0.5, TypeFairy: 0.5},
}

// Effectiveness returns the combined multiplier for a move type against
// a defender's 1-2 types. Dual types compound multiplicatively, so a
// double weakness is x4 and any immunity zeroes the result.
func Effectiveness(moveType Type, defenderTypes []Type) float64 {
	multiplier := 1.0
	row := typeChart[moveType]
	for _, t := range defenderTypes {
		if v, ok := row[t]; ok {
			multiplier *= v
		}
	}
	return multiplier
}

// ValidType reports whether t is one of the 18 known types. Used when
// validating catalog data at the boundary.
func ValidType(t Type) bool {
	switch t {
	case TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
		TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic,
		TypeBug, TypeRock, TypeGhost, TypeDragon, TypeSteel, TypeFairy,
		TypeDark:
		return true
	}
	return false
}
