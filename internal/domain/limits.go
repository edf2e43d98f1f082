package domain

// Default game limits
const (
	DefaultMaxHP         = 200
	DefaultMaxMP         = 200
	DefaultGachaUnitCost = 10
	DefaultMaxGachaDraws = 100
)

// Limits bounds player stats and prices gacha draws. It is passed by value
// into the inventory service and never mutated afterwards.
type Limits struct {
	MaxHP         int
	MaxMP         int
	GachaUnitCost int
	MaxGachaDraws int
}

// DefaultLimits returns the stock limits
func DefaultLimits() Limits {
	return Limits{
		MaxHP:         DefaultMaxHP,
		MaxMP:         DefaultMaxMP,
		GachaUnitCost: DefaultGachaUnitCost,
		MaxGachaDraws: DefaultMaxGachaDraws,
	}
}

// MaxFor returns the upper bound for a stat
func (l Limits) MaxFor(stat Stat) int {
	switch stat {
	case StatHP:
		return l.MaxHP
	case StatMP:
		return l.MaxMP
	}
	return 0
}
