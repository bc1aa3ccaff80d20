package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/rpg-idle/internal/pkg/clock/mock"
)

func TestToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := mockclock.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, "2026-03-31", clock.Today(mockClock))
}

func TestNextDate(t *testing.T) {
	assert.Equal(t, "2026-04-01", clock.NextDate("2026-03-31"))
	assert.Equal(t, "2025-01-01", clock.NextDate("2024-12-31"))
	assert.Equal(t, "", clock.NextDate("not-a-date"))
}
