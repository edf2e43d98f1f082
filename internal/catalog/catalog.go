// Package catalog holds the static item definitions: which items exist,
// which ones restore a stat when consumed, and how likely each one is to
// come out of a gacha draw.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

// Sentinel errors for catalog validation
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrDuplicateID    = errors.New("duplicate item id")
)

// Effect is what consuming an item does to its owner
type Effect struct {
	Kind  domain.EffectKind
	Stat  domain.Stat
	Value int
}

// Catalog is an immutable, validated set of item definitions
type Catalog struct {
	byID    map[int]domain.ItemDefinition
	ordered []domain.ItemDefinition
	effects map[int]Effect
}

// New validates defs and builds a catalog from them
func New(defs []domain.ItemDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}

	c := &Catalog{
		byID:    make(map[int]domain.ItemDefinition, len(defs)),
		ordered: make([]domain.ItemDefinition, 0, len(defs)),
		effects: make(map[int]Effect),
	}

	for i, def := range defs {
		if err := validateDef(i, def); err != nil {
			return nil, err
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, def.ID)
		}
		if def.EffectKind == "" {
			def.EffectKind = domain.EffectNone
		}

		c.byID[def.ID] = def
		c.ordered = append(c.ordered, def)
		if stat, ok := def.TargetStat(); ok {
			c.effects[def.ID] = Effect{Kind: def.EffectKind, Stat: stat, Value: def.EffectValue}
		}
	}

	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].ID < c.ordered[j].ID })
	return c, nil
}

func validateDef(index int, def domain.ItemDefinition) error {
	if def.ID <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveID, ErrInvalidCatalog, index)
	}
	if def.Name == "" {
		return fmt.Errorf(ErrFmtEmptyName, ErrInvalidCatalog, def.ID)
	}
	if def.GachaWeight < 0 {
		return fmt.Errorf(ErrFmtNegativeWeight, ErrInvalidCatalog, def.ID)
	}

	switch def.EffectKind {
	case "", domain.EffectNone:
		if def.EffectValue != 0 {
			return fmt.Errorf(ErrFmtValueWithoutEffect, ErrInvalidCatalog, def.ID)
		}
	case domain.EffectRestoreHP, domain.EffectRestoreMP:
		if def.EffectValue <= 0 {
			return fmt.Errorf(ErrFmtNonPositiveEffect, ErrInvalidCatalog, def.ID)
		}
	default:
		return fmt.Errorf(ErrFmtUnknownEffect, ErrInvalidCatalog, def.ID, def.EffectKind)
	}
	return nil
}

// Lookup returns the definition of an item
func (c *Catalog) Lookup(itemID int) (domain.ItemDefinition, bool) {
	def, ok := c.byID[itemID]
	return def, ok
}

// Exists reports whether the item is defined
func (c *Catalog) Exists(itemID int) bool {
	_, ok := c.byID[itemID]
	return ok
}

// Effect returns the consumable effect of an item. ok is false for items
// that cannot be consumed.
func (c *Catalog) Effect(itemID int) (Effect, bool) {
	e, ok := c.effects[itemID]
	return e, ok
}

// Items returns every definition ordered by id
func (c *Catalog) Items() []domain.ItemDefinition {
	out := make([]domain.ItemDefinition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Weighted returns the items that can come out of a gacha draw, ordered by id
func (c *Catalog) Weighted() []domain.ItemDefinition {
	var out []domain.ItemDefinition
	for _, def := range c.ordered {
		if def.GachaWeight > 0 {
			out = append(out, def)
		}
	}
	return out
}
