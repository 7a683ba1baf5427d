package clock

import "time"

// Clock stamps reservations, payments and events.
type Clock interface {
	Now() time.Time
}

type utcClock struct{}

func NewRealClock() Clock {
	return utcClock{}
}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock always reports the instant it was built with.
type MockClock struct {
	at time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{at: t}
}

func (c *MockClock) Now() time.Time {
	return c.at
}
