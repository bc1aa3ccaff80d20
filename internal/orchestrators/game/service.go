// Package game runs idle games: a reducer that applies player commands to
// game state, and a service that owns loaded save slots, persists them and
// publishes the events every command emits.
package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/savegame"
)

// EventMessageKey is the event context key holding the log line
const EventMessageKey = "message"

// Service defines the operations on loaded games
type Service interface {
	// NewGame starts over in a slot and saves the fresh state
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// LoadGame loads a slot, falling back to a fresh game when the save is
	// absent or corrupt
	LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error)

	// Dispatch applies a command to a loaded slot
	Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error)

	// SaveGame persists a snapshot of a loaded slot
	SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error)

	// GetState returns a snapshot of a loaded slot
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// CloseGame unloads a slot, optionally saving it first
	CloseGame(ctx context.Context, input *CloseGameInput) (*CloseGameOutput, error)

	// DeleteGame unloads a slot and erases its save
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Repository savegame.Repository
	EventBus   events.EventBus
	Clock      clock.Clock
	Engine     engine.Engine
	Resolver   combat.Resolver
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}

	return vb.Build()
}

// slot is a loaded game. Its mutex serializes every command so nothing
// interleaves with a combat tick and saves only see settled state.
type slot struct {
	mu    sync.Mutex
	state State
}

type orchestrator struct {
	repo    savegame.Repository
	bus     events.EventBus
	clock   clock.Clock
	engine  engine.Engine
	reducer *Reducer

	mu    sync.RWMutex
	slots map[string]*slot
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	reducer, err := NewReducer(&ReducerConfig{Engine: cfg.Engine, Resolver: cfg.Resolver})
	if err != nil {
		return nil, err
	}

	return &orchestrator{
		repo:    cfg.Repository,
		bus:     cfg.EventBus,
		clock:   cfg.Clock,
		engine:  cfg.Engine,
		reducer: reducer,
		slots:   make(map[string]*slot),
	}, nil
}

func (o *orchestrator) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}

	state, err := o.startFresh(ctx, input.SlotID)
	if err != nil {
		return nil, err
	}
	o.put(input.SlotID, State{Game: state})

	slog.Info("New game started",
		"slot_id", input.SlotID,
		"date", state.GameTime.Date,
		"gates", len(state.Gates),
	)

	return &NewGameOutput{State: state.Clone()}, nil
}

func (o *orchestrator) LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}

	output := &LoadGameOutput{}
	var state *idle.GameState

	loaded, err := o.repo.Load(ctx, &savegame.LoadInput{SlotID: input.SlotID})
	switch {
	case err == nil:
		state = loaded.State
	case errors.IsNotFound(err):
		slog.Info("No save found, starting a new game", "slot_id", input.SlotID)
		output.Fresh = true
	case errors.IsCorruptSave(err):
		slog.Warn("Save is corrupt, starting a new game",
			"slot_id", input.SlotID,
			"error", err,
		)
		output.Fresh = true
		output.Corrupted = true
	default:
		return nil, errors.Wrapf(err, "failed to load game %s", input.SlotID)
	}

	if output.Fresh {
		if state, err = o.startFresh(ctx, input.SlotID); err != nil {
			return nil, err
		}
	}

	next, evs := o.reducer.Apply(State{Game: state}, SyncDate{Date: clock.Today(o.clock)})
	o.put(input.SlotID, next)
	o.publish(ctx, input.SlotID, nil, evs)

	slog.Info("Game loaded",
		"slot_id", input.SlotID,
		"fresh", output.Fresh,
		"day", next.Game.GameTime.Day,
		"level", next.Game.Player.Level,
	)

	output.State = next.Game.Clone()
	output.Events = evs
	return output, nil
}

func (o *orchestrator) Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}
	if input.Command == nil {
		return nil, errors.InvalidArgument("command is required")
	}

	sl, err := o.get(input.SlotID)
	if err != nil {
		return nil, err
	}

	sl.mu.Lock()
	next, evs := o.reducer.Apply(sl.state, SyncDate{Date: clock.Today(o.clock)})
	var cmdEvs []Event
	next, cmdEvs = o.reducer.Apply(next, input.Command)
	evs = append(evs, cmdEvs...)

	target := sl.state.Combat
	if next.Combat != nil {
		target = next.Combat
	}
	sl.state = next
	output := &DispatchOutput{
		State:  next.Game.Clone(),
		Combat: next.Combat.Clone(),
		Events: evs,
	}
	sl.mu.Unlock()

	slog.Debug("Command applied",
		"slot_id", input.SlotID,
		"command", input.Command.Name(),
		"events", len(evs),
	)

	var gate *idle.Gate
	if target != nil {
		gate = &target.Gate
	}
	o.publish(ctx, input.SlotID, gate, evs)

	return output, nil
}

func (o *orchestrator) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}

	sl, err := o.get(input.SlotID)
	if err != nil {
		return nil, err
	}

	sl.mu.Lock()
	snapshot := sl.state.Game.Clone()
	sl.mu.Unlock()

	out, err := o.repo.Save(ctx, &savegame.SaveInput{SlotID: input.SlotID, State: snapshot})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save game %s", input.SlotID)
	}

	slog.Debug("Game saved", "slot_id", input.SlotID, "bytes", out.Bytes)

	return &SaveGameOutput{Bytes: out.Bytes}, nil
}

func (o *orchestrator) GetState(_ context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}

	sl, err := o.get(input.SlotID)
	if err != nil {
		return nil, err
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	return &GetStateOutput{
		State:  sl.state.Game.Clone(),
		Combat: sl.state.Combat.Clone(),
		Power:  o.engine.Power(&sl.state.Game.Player),
	}, nil
}

func (o *orchestrator) CloseGame(ctx context.Context, input *CloseGameInput) (*CloseGameOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}

	output := &CloseGameOutput{}
	if input.Save {
		if _, err := o.SaveGame(ctx, &SaveGameInput{SlotID: input.SlotID}); err != nil {
			return nil, err
		}
		output.Saved = true
	}

	o.mu.Lock()
	delete(o.slots, input.SlotID)
	o.mu.Unlock()

	slog.Info("Game closed", "slot_id", input.SlotID, "saved", output.Saved)

	return output, nil
}

func (o *orchestrator) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument("slot ID is required")
	}

	o.mu.Lock()
	delete(o.slots, input.SlotID)
	o.mu.Unlock()

	out, err := o.repo.Delete(ctx, &savegame.DeleteInput{SlotID: input.SlotID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete game %s", input.SlotID)
	}

	slog.Info("Game deleted", "slot_id", input.SlotID, "deleted", out.Deleted)

	return &DeleteGameOutput{Deleted: out.Deleted}, nil
}

// startFresh builds a new game for today and saves it over the slot
func (o *orchestrator) startFresh(ctx context.Context, slotID string) (*idle.GameState, error) {
	state := o.engine.NewGameState(clock.Today(o.clock))
	if _, err := o.repo.Save(ctx, &savegame.SaveInput{SlotID: slotID, State: state}); err != nil {
		return nil, errors.Wrapf(err, "failed to save new game %s", slotID)
	}
	return state, nil
}

// put installs state in the slot, reusing a loaded slot so a command already
// holding its lock finishes before the state is replaced
func (o *orchestrator) put(slotID string, state State) {
	o.mu.Lock()
	sl, ok := o.slots[slotID]
	if !ok {
		sl = &slot{}
		o.slots[slotID] = sl
	}
	o.mu.Unlock()

	sl.mu.Lock()
	sl.state = state
	sl.mu.Unlock()
}

func (o *orchestrator) get(slotID string) (*slot, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	sl, ok := o.slots[slotID]
	if !ok {
		return nil, errors.NotFoundf("game %s is not loaded", slotID)
	}
	return sl, nil
}

// publish sends events to the bus outside any slot lock. Publishing never
// affects gameplay, so failures are only logged.
func (o *orchestrator) publish(ctx context.Context, slotID string, gate *idle.Gate, evs []Event) {
	source := &idle.PlayerEntity{SlotID: slotID}
	var target core.Entity = source
	if gate != nil {
		target = gate
	}

	for _, ev := range evs {
		gameEvent := events.NewGameEvent(ev.Type.Topic(), source, target)
		gameEvent.Context().Set(EventMessageKey, ev.Message)
		if err := o.bus.Publish(ctx, gameEvent); err != nil {
			slog.Warn("Failed to publish event",
				"slot_id", slotID,
				"event_type", string(ev.Type),
				"error", err,
			)
		}
	}
}
