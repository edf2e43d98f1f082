package inventory_bench

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/osse101/PotionGacha_Go/internal/catalog"
	"github.com/osse101/PotionGacha_Go/internal/database/memory"
	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/gacha"
	"github.com/osse101/PotionGacha_Go/internal/inventory"
)

// benchLimits never caps a stat or runs out of draws
var benchLimits = domain.Limits{
	MaxHP:         math.MaxInt32,
	MaxMP:         math.MaxInt32,
	GachaUnitCost: 1,
	MaxGachaDraws: 100,
}

func newBenchService(b *testing.B) (inventory.Service, *memory.Store) {
	b.Helper()
	items, err := catalog.New([]domain.ItemDefinition{
		{ID: domain.ItemHPPotion, Name: "HP Potion", EffectKind: domain.EffectRestoreHP, EffectValue: 1, GachaWeight: 30},
		{ID: domain.ItemMPPotion, Name: "MP Potion", EffectKind: domain.EffectRestoreMP, EffectValue: 1, GachaWeight: 20},
	})
	if err != nil {
		b.Fatalf("catalog: %v", err)
	}
	store := memory.NewStore(time.Second)
	return inventory.NewService(store, items, gacha.NewEngine(items.Weighted()), benchLimits), store
}

func newBenchPlayer(b *testing.B, store *memory.Store, currency int) int64 {
	b.Helper()
	p, err := store.CreatePlayer(context.Background(), domain.Player{Currency: currency})
	if err != nil {
		b.Fatalf("CreatePlayer failed: %v", err)
	}
	return p.ID
}

// BenchmarkGrant measures a single-player grant transaction
func BenchmarkGrant(b *testing.B) {
	svc, store := newBenchService(b)
	ctx := context.Background()
	id := newBenchPlayer(b, store, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Grant(ctx, id, domain.ItemHPPotion, 1); err != nil {
			b.Fatalf("Grant failed: %v", err)
		}
	}
}

// BenchmarkConsume measures consuming from a pre-filled stack
func BenchmarkConsume(b *testing.B) {
	svc, store := newBenchService(b)
	ctx := context.Background()
	id := newBenchPlayer(b, store, 0)
	if _, err := svc.Grant(ctx, id, domain.ItemHPPotion, b.N); err != nil {
		b.Fatalf("Grant failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Consume(ctx, id, domain.ItemHPPotion); err != nil {
			b.Fatalf("Consume failed: %v", err)
		}
	}
}

// BenchmarkDrawGacha_MaxDraws measures the largest allowed draw
func BenchmarkDrawGacha_MaxDraws(b *testing.B) {
	svc, store := newBenchService(b)
	ctx := context.Background()
	id := newBenchPlayer(b, store, benchLimits.MaxGachaDraws*b.N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.DrawGacha(ctx, id, benchLimits.MaxGachaDraws); err != nil {
			b.Fatalf("DrawGacha failed: %v", err)
		}
	}
}

// BenchmarkDrawGacha_ParallelPlayers spreads draws across independent players
func BenchmarkDrawGacha_ParallelPlayers(b *testing.B) {
	svc, store := newBenchService(b)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		p, err := store.CreatePlayer(ctx, domain.Player{Currency: math.MaxInt32})
		if err != nil {
			b.Errorf("CreatePlayer failed: %v", err)
			return
		}
		for pb.Next() {
			if _, err := svc.DrawGacha(ctx, p.ID, 10); err != nil {
				b.Errorf("DrawGacha failed: %v", err)
				return
			}
		}
	})
}
