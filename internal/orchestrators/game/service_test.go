package game_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
	mockclock "github.com/KirkDiggler/rpg-idle/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/rng"
	savegamemock "github.com/KirkDiggler/rpg-idle/internal/repositories/savegame/mock"
	"github.com/KirkDiggler/rpg-idle/internal/testutils"
	"github.com/KirkDiggler/rpg-idle/internal/testutils/mocks"
)

// recordingEventBus captures published event types
type recordingEventBus struct {
	mu        sync.Mutex
	published []string
	messages  []string
}

func (b *recordingEventBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, e.Type())
	if msg, ok := e.Context().Get(game.EventMessageKey); ok {
		if s, ok := msg.(string); ok {
			b.messages = append(b.messages, s)
		}
	}
	return nil
}

func (b *recordingEventBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingEventBus) Unsubscribe(_ string) error { return nil }
func (b *recordingEventBus) Clear(_ string)             {}
func (b *recordingEventBus) ClearAll()                  {}

func (b *recordingEventBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.published...)
}

type ServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *savegamemock.MockRepository
	mockClock *mockclock.MockClock
	bus       *recordingEventBus
	service   game.Service
	ctx       context.Context
	now       time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = savegamemock.NewMockRepository(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.bus = &recordingEventBus{}
	s.ctx = context.Background()
	s.now = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	random := rng.NewSeeded(7)
	eng, err := engine.New(&engine.Config{
		Balance:     engine.DefaultBalance(),
		Random:      random,
		IDGenerator: idgen.NewSequential(""),
	})
	s.Require().NoError(err)
	resolver, err := combat.New(&combat.Config{Engine: eng, Random: random})
	s.Require().NoError(err)

	s.service, err = game.NewOrchestrator(&game.Config{
		Repository: s.mockRepo,
		EventBus:   s.bus,
		Clock:      s.mockClock,
		Engine:     eng,
		Resolver:   resolver,
	})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) load(state *idle.GameState) {
	mocks.ExpectSaveLoad(s.ctx, s.mockRepo, testutils.TestSlotID, state)
	_, err := s.service.LoadGame(s.ctx, &game.LoadGameInput{SlotID: testutils.TestSlotID})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestNewOrchestratorValidation() {
	_, err := game.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = game.NewOrchestrator(&game.Config{Repository: s.mockRepo})
	s.Require().Error(err)
	s.Contains(err.Error(), "EventBus")
}

func (s *ServiceTestSuite) TestNewGame() {
	var saved *idle.GameState
	mocks.ExpectSave(s.ctx, s.mockRepo, testutils.TestSlotID, &saved)

	out, err := s.service.NewGame(s.ctx, &game.NewGameInput{SlotID: testutils.TestSlotID})
	s.Require().NoError(err)

	s.Equal(1, out.State.GameTime.Day)
	s.Equal("2026-10-17", out.State.GameTime.Date)
	s.Equal(100, out.State.Gold)
	s.GreaterOrEqual(len(out.State.Gates), 3)
	s.Len(out.State.Daily.Quests, 5)
	s.Equal(saved, out.State)

	got, err := s.service.GetState(s.ctx, &game.GetStateInput{SlotID: testutils.TestSlotID})
	s.Require().NoError(err)
	s.Equal(37, got.Power)
	s.Nil(got.Combat)
}

func (s *ServiceTestSuite) TestNewGameSaveFails() {
	s.mockRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	_, err := s.service.NewGame(s.ctx, &game.NewGameInput{SlotID: testutils.TestSlotID})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	_, err = s.service.GetState(s.ctx, &game.GetStateInput{SlotID: testutils.TestSlotID})
	s.True(errors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestLoadGame() {
	s.Run("existing save on the same day", func() {
		stored := testutils.CreateTestGameStateWithProgress(testutils.StageGeared)
		mocks.ExpectSaveLoad(s.ctx, s.mockRepo, testutils.TestSlotID, stored.Clone())

		out, err := s.service.LoadGame(s.ctx, &game.LoadGameInput{SlotID: testutils.TestSlotID})
		s.Require().NoError(err)
		s.False(out.Fresh)
		s.Empty(out.Events)
		s.Equal(stored, out.State)
	})

	s.Run("missing save starts fresh", func() {
		mocks.ExpectSaveMissing(s.ctx, s.mockRepo, "empty-slot")
		mocks.ExpectSave(s.ctx, s.mockRepo, "empty-slot", nil)

		out, err := s.service.LoadGame(s.ctx, &game.LoadGameInput{SlotID: "empty-slot"})
		s.Require().NoError(err)
		s.True(out.Fresh)
		s.False(out.Corrupted)
		s.Equal(1, out.State.Player.Level)
	})

	s.Run("corrupt save starts fresh", func() {
		mocks.ExpectSaveCorrupt(s.ctx, s.mockRepo, "bad-slot")
		mocks.ExpectSave(s.ctx, s.mockRepo, "bad-slot", nil)

		out, err := s.service.LoadGame(s.ctx, &game.LoadGameInput{SlotID: "bad-slot"})
		s.Require().NoError(err)
		s.True(out.Fresh)
		s.True(out.Corrupted)
	})

	s.Run("store failure is returned", func() {
		s.mockRepo.EXPECT().Load(s.ctx, gomock.Any()).Return(nil, errors.Internal("boom"))

		_, err := s.service.LoadGame(s.ctx, &game.LoadGameInput{SlotID: "broken"})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
	})

	s.Run("slot is required", func() {
		_, err := s.service.LoadGame(s.ctx, &game.LoadGameInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ServiceTestSuite) TestLoadGameRollsOverToToday() {
	s.now = s.now.AddDate(0, 0, 3)
	s.load(testutils.CreateTestGameState())

	got, err := s.service.GetState(s.ctx, &game.GetStateInput{SlotID: testutils.TestSlotID})
	s.Require().NoError(err)
	s.Equal(2, got.State.GameTime.Day)
	s.Equal("2026-10-20", got.State.GameTime.Date)
	s.Equal([]string{game.EventDayRollover.Topic()}, s.bus.types())
}

func (s *ServiceTestSuite) TestDispatch() {
	s.Run("requires a loaded game", func() {
		_, err := s.service.Dispatch(s.ctx, &game.DispatchInput{SlotID: "nobody", Command: game.Rest{}})
		s.True(errors.IsNotFound(err))
	})

	s.Run("requires a command", func() {
		_, err := s.service.Dispatch(s.ctx, &game.DispatchInput{SlotID: testutils.TestSlotID})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("applies and publishes", func() {
		s.load(testutils.CreateTestGameState())

		out, err := s.service.Dispatch(s.ctx, &game.DispatchInput{
			SlotID:  testutils.TestSlotID,
			Command: game.BuyItem{Kind: idle.ItemPotion},
		})
		s.Require().NoError(err)
		s.Equal(75, out.State.Gold)
		s.Require().Len(out.Events, 1)
		s.Contains(s.bus.types(), game.EventLog.Topic())

		// outputs are snapshots
		out.State.Gold = 1_000_000
		got, err := s.service.GetState(s.ctx, &game.GetStateInput{SlotID: testutils.TestSlotID})
		s.Require().NoError(err)
		s.Equal(75, got.State.Gold)
	})

	s.Run("rejections are events, not errors", func() {
		out, err := s.service.Dispatch(s.ctx, &game.DispatchInput{
			SlotID:  testutils.TestSlotID,
			Command: game.StartGate{GateID: "gate_missing"},
		})
		s.Require().NoError(err)
		s.Require().Len(out.Events, 1)
		s.Equal(game.EventRejected, out.Events[0].Type)
	})

	s.Run("keeps the combat session between commands", func() {
		out, err := s.service.Dispatch(s.ctx, &game.DispatchInput{
			SlotID:  testutils.TestSlotID,
			Command: game.StartGate{GateID: "gate_1"},
		})
		s.Require().NoError(err)
		s.Require().NotNil(out.Combat)

		out, err = s.service.Dispatch(s.ctx, &game.DispatchInput{SlotID: testutils.TestSlotID, Command: game.ResolveTick{}})
		s.Require().NoError(err)
		s.Require().NotNil(out.Combat)
		s.Equal(1, out.Combat.Ticks)
	})

	s.Run("picks up a new calendar day", func() {
		s.now = s.now.AddDate(0, 0, 1)
		out, err := s.service.Dispatch(s.ctx, &game.DispatchInput{SlotID: testutils.TestSlotID, Command: game.AbandonGate{}})
		s.Require().NoError(err)
		s.Require().Len(out.Events, 2)
		s.Equal(game.EventDayRollover, out.Events[0].Type)
		s.Equal(game.EventLog, out.Events[1].Type)
		s.Equal(2, out.State.GameTime.Day)
	})
}

func (s *ServiceTestSuite) TestDispatchSerializesCommands() {
	s.load(testutils.CreateTestGameState())

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Dispatch(s.ctx, &game.DispatchInput{
				SlotID:  testutils.TestSlotID,
				Command: game.BuyItem{Kind: idle.ItemPotion},
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	got, err := s.service.GetState(s.ctx, &game.GetStateInput{SlotID: testutils.TestSlotID})
	s.Require().NoError(err)
	s.Equal(0, got.State.Gold)
	s.Len(got.State.Player.Inventory, 4)
}

func (s *ServiceTestSuite) TestSaveGame() {
	s.load(testutils.CreateTestGameStateWithProgress(testutils.StageVeteran))

	var saved *idle.GameState
	mocks.ExpectSave(s.ctx, s.mockRepo, testutils.TestSlotID, &saved)

	out, err := s.service.SaveGame(s.ctx, &game.SaveGameInput{SlotID: testutils.TestSlotID})
	s.Require().NoError(err)
	s.Equal(1, out.Bytes)
	s.Require().NotNil(saved)
	s.Equal(12, saved.Player.Level)

	_, err = s.service.SaveGame(s.ctx, &game.SaveGameInput{SlotID: "unloaded"})
	s.True(errors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestCloseGame() {
	s.load(testutils.CreateTestGameState())
	mocks.ExpectSave(s.ctx, s.mockRepo, testutils.TestSlotID, nil)

	out, err := s.service.CloseGame(s.ctx, &game.CloseGameInput{SlotID: testutils.TestSlotID, Save: true})
	s.Require().NoError(err)
	s.True(out.Saved)

	_, err = s.service.GetState(s.ctx, &game.GetStateInput{SlotID: testutils.TestSlotID})
	s.True(errors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestDeleteGame() {
	s.load(testutils.CreateTestGameState())
	mocks.ExpectDelete(s.ctx, s.mockRepo, testutils.TestSlotID, true)

	out, err := s.service.DeleteGame(s.ctx, &game.DeleteGameInput{SlotID: testutils.TestSlotID})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.service.GetState(s.ctx, &game.GetStateInput{SlotID: testutils.TestSlotID})
	s.True(errors.IsNotFound(err))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
