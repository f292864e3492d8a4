package clock

import "time"

// Clock supplies the timestamps written to created_at, updated_at and
// settled_at. Values are UTC at microsecond precision so that what is
// returned to callers equals what Postgres stores.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return normalize(time.Now())
}

// MockClock returns a fixed instant until moved with Advance.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: normalize(t)}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

func (c *MockClock) Advance(d time.Duration) {
	c.current = normalize(c.current.Add(d))
}

func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
