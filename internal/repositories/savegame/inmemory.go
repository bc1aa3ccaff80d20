package savegame

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// InMemoryRepository keeps encoded saves in a map. Saves still go through the
// codec so a round trip behaves like the durable backends.
type InMemoryRepository struct {
	mu    sync.RWMutex
	codec *Codec
	saves map[string][]byte
}

// NewInMemory creates an in-memory save repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		codec: NewCodec(DefaultMinPoolSize),
		saves: make(map[string][]byte),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Put stores raw bytes for a slot, bypassing the codec
func (r *InMemoryRepository) Put(slotID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves[slotKey(slotID)] = append([]byte(nil), data...)
}

func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument(errSlotIDEmpty)
	}
	data, err := r.codec.Encode(input.State)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves[slotKey(input.SlotID)] = data
	return &SaveOutput{Bytes: len(data)}, nil
}

func (r *InMemoryRepository) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument(errSlotIDEmpty)
	}

	r.mu.RLock()
	data, ok := r.saves[slotKey(input.SlotID)]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("save %s not found", input.SlotID)
	}

	state, err := r.codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{State: state}, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.InvalidArgument(errSlotIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.saves[slotKey(input.SlotID)]
	delete(r.saves, slotKey(input.SlotID))
	return &DeleteOutput{Deleted: ok}, nil
}
