package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/config"
	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-idle/internal/redis"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/savegame"
)

// app is the wired game service plus whatever must be closed on exit
type app struct {
	service game.Service
	engine  engine.Engine
	slotID  string
	out     io.Writer
	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config, out io.Writer) (*app, error) {
	a := &app{slotID: cfg.SlotID, out: out}

	balance := engine.DefaultBalance()
	if cfg.BalancePath != "" {
		loaded, err := engine.LoadBalance(cfg.BalancePath)
		if err != nil {
			return nil, err
		}
		balance = loaded
	}

	random := rng.New(nil)
	if cfg.Seed != 0 {
		random = rng.NewSeeded(cfg.Seed)
	}

	eng, err := engine.New(&engine.Config{
		Balance:     balance,
		Random:      random,
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		return nil, err
	}
	a.engine = eng

	resolver, err := combat.New(&combat.Config{Engine: eng, Random: random})
	if err != nil {
		return nil, err
	}

	repo, err := a.openRepository(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	bus := events.NewBus()
	for _, eventType := range game.AllEventTypes() {
		bus.SubscribeFunc(eventType.Topic(), 0, printEvent(out, eventType))
	}

	a.service, err = game.NewOrchestrator(&game.Config{
		Repository: repo,
		EventBus:   bus,
		Clock:      clock.New(),
		Engine:     eng,
		Resolver:   resolver,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) openRepository(ctx context.Context, cfg *config.Config) (savegame.Repository, error) {
	codec := savegame.NewCodec(a.engine.Balance().Gates.MinPoolSize)

	switch cfg.Store {
	case config.StoreRedis:
		var client redis.Client
		var err error
		if cfg.RedisURL != "" {
			client, err = redis.NewClientFromURL(cfg.RedisURL)
		} else {
			client, err = redis.NewClient(cfg.RedisAddr, nil)
		}
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		if err := redis.Ping(ctx, client); err != nil {
			return nil, err
		}
		return savegame.NewRedis(&savegame.RedisConfig{Client: client, Codec: codec})

	case config.StoreBolt:
		repo, err := savegame.OpenBolt(&savegame.BoltConfig{Path: cfg.BoltPath, Codec: codec})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil

	default:
		slog.Warn("Using the in-memory store, progress is lost on exit")
		return savegame.NewInMemory(), nil
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

// load opens the configured slot and reports a discarded save
func (a *app) load(ctx context.Context) (*game.LoadGameOutput, error) {
	out, err := a.service.LoadGame(ctx, &game.LoadGameInput{SlotID: a.slotID})
	if err != nil {
		return nil, err
	}
	if out.Corrupted {
		fmt.Fprintln(a.out, "The save was unreadable, a new game was started.")
	} else if out.Fresh {
		fmt.Fprintln(a.out, "No save found, a new game was started.")
	}
	return out, nil
}

func (a *app) dispatch(ctx context.Context, cmd game.Command) (*game.DispatchOutput, error) {
	return a.service.Dispatch(ctx, &game.DispatchInput{SlotID: a.slotID, Command: cmd})
}

func (a *app) save(ctx context.Context) error {
	_, err := a.service.SaveGame(ctx, &game.SaveGameInput{SlotID: a.slotID})
	return err
}

func printEvent(out io.Writer, eventType game.EventType) events.HandlerFunc {
	return func(_ context.Context, e events.Event) error {
		msg, ok := e.Context().Get(game.EventMessageKey)
		if !ok {
			return nil
		}
		_, err := fmt.Fprintf(out, "%-14s %v\n", "["+string(eventType)+"]", msg)
		return err
	}
}
