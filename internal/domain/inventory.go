package domain

// PlayerItem is the count of a single item held by a player.
// There is exactly one row per (PlayerID, ItemID) and Count never drops below zero.
type PlayerItem struct {
	PlayerID int64 `json:"player_id" db:"player_id"`
	ItemID   int   `json:"item_id" db:"item_id"`
	Count    int   `json:"count" db:"count"`
}

// ItemCount is an (item, count) pair as returned to callers
type ItemCount struct {
	ItemID int `json:"itemId"`
	Count  int `json:"count"`
}

// GrantResult is returned by a grant
type GrantResult struct {
	ItemID int `json:"itemId"`
	Count  int `json:"count"`
}

// ConsumeResult is returned by a successful consume. Count is the persisted
// count after the decrement.
type ConsumeResult struct {
	ItemID int           `json:"itemId"`
	Count  int           `json:"count"`
	Player PlayerSummary `json:"player"`
}

// GachaPlayerState is the player state after a gacha settlement
type GachaPlayerState struct {
	Currency int         `json:"money"`
	Items    []ItemCount `json:"items"`
}

// GachaResult is returned by a successful gacha draw.
// Results lists one entry per winning draw in draw order; misses are omitted.
type GachaResult struct {
	Results []ItemCount      `json:"results"`
	Player  GachaPlayerState `json:"player"`
}
