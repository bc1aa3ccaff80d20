package engine

import (
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/rng"
)

type idGenerators struct {
	gate  idgen.Generator
	item  idgen.Generator
	ally  idgen.Generator
	quest idgen.Generator
}

type engine struct {
	balance *Balance
	random  rng.Source
	ids     idGenerators
}

// Config holds the dependencies of the engine
type Config struct {
	Balance     *Balance
	Random      rng.Source
	IDGenerator idgen.Generator
}

// Validate checks that all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Balance == nil {
		vb.RequiredField("balance")
	}
	if cfg.Random == nil {
		vb.RequiredField("random")
	}
	if cfg.IDGenerator == nil {
		vb.RequiredField("id_generator")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	return cfg.Balance.Validate()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid engine config")
	}

	return &engine{
		balance: cfg.Balance,
		random:  cfg.Random,
		ids: idGenerators{
			gate:  idgen.WithPrefix("gate", cfg.IDGenerator),
			item:  idgen.WithPrefix("item", cfg.IDGenerator),
			ally:  idgen.WithPrefix("ally", cfg.IDGenerator),
			quest: idgen.WithPrefix("quest", cfg.IDGenerator),
		},
	}, nil
}

func (e *engine) Balance() *Balance {
	return e.balance
}

func (e *engine) Power(player *idle.Player) int {
	return CalculatePower(&e.balance.Power, player)
}

func (e *engine) RecommendedPower(rank idle.Rank) int {
	return RecommendedPower(&e.balance.Gates, rank)
}

func (e *engine) ExtractionChance(stats idle.Stats, rank idle.Rank) float64 {
	return CalculateExtractionChance(&e.balance.Binding, stats, rank)
}
