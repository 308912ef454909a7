package factory

import (
	"time"

	"github.com/cardnight/ledger/internal/dependencies/mocks"
	"github.com/cardnight/ledger/internal/storage/memory"
	"github.com/cardnight/ledger/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App on in-memory storage with mocked clock and randomness.
// The clock starts on a Saturday evening.
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 3, 2, 21, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(memory.New(), mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
