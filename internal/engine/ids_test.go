package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	idgenmock "github.com/KirkDiggler/rpg-idle/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/rng"
)

func TestGeneratedIDsCarryEntityPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := idgenmock.NewMockGenerator(ctrl)

	e, err := engine.New(&engine.Config{
		Balance:     engine.DefaultBalance(),
		Random:      rng.NewSeeded(3),
		IDGenerator: ids,
	})
	require.NoError(t, err)

	gomock.InOrder(
		ids.EXPECT().Generate().Return("a1"),
		ids.EXPECT().Generate().Return("b2"),
	)

	gate := e.GenerateGate(idle.RankE)
	assert.Equal(t, "gate_a1", gate.ID)

	item, ok := e.ShopItem(idle.ItemPotion)
	require.True(t, ok)
	assert.Equal(t, "item_b2", item.ID)
}
