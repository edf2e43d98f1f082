package domain

// Stat identifies a bounded resource pool on a player
type Stat string

const (
	StatHP Stat = "hp"
	StatMP Stat = "mp"
)

// Player holds the mutable stats of a single player
type Player struct {
	ID       int64 `json:"id" db:"player_id"`
	HP       int   `json:"hp" db:"hp"`
	MP       int   `json:"mp" db:"mp"`
	Currency int   `json:"currency" db:"currency"`
}

// StatValue returns the current value of the given stat
func (p *Player) StatValue(stat Stat) (int, bool) {
	switch stat {
	case StatHP:
		return p.HP, true
	case StatMP:
		return p.MP, true
	}
	return 0, false
}

// SetStat overwrites the value of the given stat
func (p *Player) SetStat(stat Stat, value int) {
	switch stat {
	case StatHP:
		p.HP = value
	case StatMP:
		p.MP = value
	}
}

// PlayerSummary is the stat snapshot returned after consuming an item
type PlayerSummary struct {
	ID int64 `json:"id"`
	HP int   `json:"hp"`
	MP int   `json:"mp"`
}
