package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("test")
	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestWithPrefixSharesCounter(t *testing.T) {
	seq := idgen.NewSequential("")
	gates := idgen.WithPrefix("gate", seq)
	items := idgen.WithPrefix("item", seq)

	assert.Equal(t, "gate_1", gates.Generate())
	assert.Equal(t, "item_2", items.Generate())
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("ally").Generate()
	assert.True(t, strings.HasPrefix(id, "ally_"))
	assert.Len(t, id, len("ally_")+36)
}
