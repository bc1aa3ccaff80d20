package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

func TestDefaultBalanceIsValid(t *testing.T) {
	require.NoError(t, engine.DefaultBalance().Validate())
}

func TestParseBalanceOverlaysDefaults(t *testing.T) {
	doc := []byte(`
shop:
  potionPrice: 40
gates:
  minPoolSize: 4
  pool:
    - rank: E
      unlockLevel: 1
      min: 3
      max: 5
    - rank: S
      unlockLevel: 10
      min: 1
      max: 1
quests:
  difficulties:
    - difficulty: easy
      multiplier: 1
    - difficulty: epic
      multiplier: 4
      minLevel: 2
      bonus:
        keys: 2
`)
	b, err := engine.ParseBalance(doc)
	require.NoError(t, err)

	assert.Equal(t, 40, b.Shop.PotionPrice)
	assert.Equal(t, 120, b.Shop.RunePrice)
	assert.Equal(t, 4, b.Gates.MinPoolSize)
	require.Len(t, b.Gates.Pool, 2)
	assert.Equal(t, idle.RankS, b.Gates.Pool[1].Rank)
	assert.Equal(t, 1.8, b.Gates.Curve.Base)
	require.Len(t, b.Quests.Difficulties, 2)
	assert.Equal(t, idle.DifficultyEpic, b.Quests.Difficulties[1].Difficulty)
	assert.Equal(t, 2, b.Quests.Difficulties[1].Bonus.Keys)
}

func TestParseBalanceRejectsBadTables(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "shop: [unterminated"},
		{"unknown rank", "gates:\n  pool:\n    - rank: Z\n      min: 1\n      max: 2\n"},
		{"bands out of order", "loot:\n  bands:\n    - kind: key\n      upper: 0.5\n    - kind: rune\n      upper: 0.2\n"},
		{"chance bounds inverted", "binding:\n  minChance: 0.9\n  maxChance: 0.1\n"},
		{"short rarity row", "loot:\n  rarityWeights: [[1, 2]]\n"},
		{"empty pool", "gates:\n  pool: []\n"},
		{"bottom tier missing", "gates:\n  pool:\n    - rank: D\n      min: 2\n      max: 4\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.ParseBalance([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestLoadBalance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rest:\n  fatigueRecovery: 45\n"), 0o600))

	b, err := engine.LoadBalance(path)
	require.NoError(t, err)
	assert.Equal(t, 45.0, b.Rest.FatigueRecovery)
	assert.Equal(t, 0.3, b.Rest.HealRatio)

	_, err = engine.LoadBalance(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
