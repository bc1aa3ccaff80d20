// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/savegame"
	savegamemock "github.com/KirkDiggler/rpg-idle/internal/repositories/savegame/mock"
)

// ExpectSaveLoad sets up a mock expectation for loading a slot
func ExpectSaveLoad(
	ctx context.Context, mockRepo *savegamemock.MockRepository,
	slotID string, state *idle.GameState,
) *gomock.Call {
	return mockRepo.EXPECT().
		Load(ctx, &savegame.LoadInput{SlotID: slotID}).
		Return(&savegame.LoadOutput{State: state}, nil)
}

// ExpectSaveMissing sets up a load that finds nothing
func ExpectSaveMissing(ctx context.Context, mockRepo *savegamemock.MockRepository, slotID string) *gomock.Call {
	return mockRepo.EXPECT().
		Load(ctx, &savegame.LoadInput{SlotID: slotID}).
		Return(nil, errors.NotFoundf("save %s not found", slotID))
}

// ExpectSaveCorrupt sets up a load of a malformed save
func ExpectSaveCorrupt(ctx context.Context, mockRepo *savegamemock.MockRepository, slotID string) *gomock.Call {
	return mockRepo.EXPECT().
		Load(ctx, &savegame.LoadInput{SlotID: slotID}).
		Return(nil, errors.CorruptSave("failed to decode save"))
}

// ExpectSave sets up a save of slotID and captures the persisted state into out
func ExpectSave(
	ctx context.Context, mockRepo *savegamemock.MockRepository,
	slotID string, out **idle.GameState,
) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *savegame.SaveInput) (*savegame.SaveOutput, error) {
			if input.SlotID != slotID {
				return nil, errors.InvalidArgumentf("unexpected slot %s", input.SlotID)
			}
			if out != nil {
				*out = input.State
			}
			return &savegame.SaveOutput{Bytes: 1}, nil
		})
}

// ExpectDelete sets up a mock expectation for deleting a slot
func ExpectDelete(ctx context.Context, mockRepo *savegamemock.MockRepository, slotID string, deleted bool) *gomock.Call {
	return mockRepo.EXPECT().
		Delete(ctx, &savegame.DeleteInput{SlotID: slotID}).
		Return(&savegame.DeleteOutput{Deleted: deleted}, nil)
}
