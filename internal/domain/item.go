package domain

// EffectKind describes what consuming an item does
type EffectKind string

const (
	EffectNone      EffectKind = "none"
	EffectRestoreHP EffectKind = "restoreHp"
	EffectRestoreMP EffectKind = "restoreMp"
)

// Conventional item ids
const (
	ItemHPPotion = 1
	ItemMPPotion = 2
)

// ItemDefinition is static catalog metadata for an item
type ItemDefinition struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	EffectKind  EffectKind `json:"effect_kind"`
	EffectValue int        `json:"effect_value"`
	GachaWeight int        `json:"gacha_weight"`
}

// TargetStat returns the stat restored by the item's effect
func (d ItemDefinition) TargetStat() (Stat, bool) {
	switch d.EffectKind {
	case EffectRestoreHP:
		return StatHP, true
	case EffectRestoreMP:
		return StatMP, true
	}
	return "", false
}
