package factory

import (
	"time"

	"github.com/mcoot/pig/internal/dependencies/mocks"
	"github.com/mcoot/pig/internal/model"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(Config{}, mockClock, mockRandom)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueDice makes the next rolls come up with the given faces
func (t *TestApp) QueueDice(faces ...model.Die) {
	t.MockRandom.QueueDice(faces...)
}

// QueueAnimatedRoll queues an animation of len(faces) frames, which must be 5 to 10
func (t *TestApp) QueueAnimatedRoll(faces ...model.Die) {
	t.MockRandom.QueueIntn(len(faces) - 5)
	t.MockRandom.QueueDice(faces...)
}
