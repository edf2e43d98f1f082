package catalog

import "github.com/osse101/PotionGacha_Go/internal/domain"

// Stock item ids beyond the two potions
const (
	ItemBronzeMedal = 3
	ItemSilverMedal = 4
	ItemGoldMedal   = 5
)

// DefaultDefinitions is the catalog used when no catalog file is configured
func DefaultDefinitions() []domain.ItemDefinition {
	return []domain.ItemDefinition{
		{ID: domain.ItemHPPotion, Name: "HP Potion", EffectKind: domain.EffectRestoreHP, EffectValue: 50, GachaWeight: 35},
		{ID: domain.ItemMPPotion, Name: "MP Potion", EffectKind: domain.EffectRestoreMP, EffectValue: 50, GachaWeight: 35},
		{ID: ItemBronzeMedal, Name: "Bronze Medal", EffectKind: domain.EffectNone, GachaWeight: 20},
		{ID: ItemSilverMedal, Name: "Silver Medal", EffectKind: domain.EffectNone, GachaWeight: 8},
		{ID: ItemGoldMedal, Name: "Gold Medal", EffectKind: domain.EffectNone, GachaWeight: 2},
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultDefinitions())
	if err != nil {
		panic(err)
	}
	return c
}
