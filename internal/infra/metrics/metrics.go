// Package metrics provides counters for the matching lifecycle.
package metrics

// Recorder captures metric events for the application.
type Recorder interface {
	IncMatchingCreated()
	IncMatchingSettled()
	IncMatchingDeleted()
	IncExpenseAttached()
	IncExpenseDetached()
	IncExpenseDeleted()
}
