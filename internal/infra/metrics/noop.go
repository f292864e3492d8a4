package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) IncMatchingCreated() {}
func (n *NoopRecorder) IncMatchingSettled() {}
func (n *NoopRecorder) IncMatchingDeleted() {}
func (n *NoopRecorder) IncExpenseAttached() {}
func (n *NoopRecorder) IncExpenseDetached() {}
func (n *NoopRecorder) IncExpenseDeleted()  {}
