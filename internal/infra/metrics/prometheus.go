package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder registers its counters on the given registry.
type PrometheusRecorder struct {
	matchingsCreated prometheus.Counter
	matchingsSettled prometheus.Counter
	matchingsDeleted prometheus.Counter
	expensesAttached prometheus.Counter
	expensesDetached prometheus.Counter
	expensesDeleted  prometheus.Counter
}

func NewPrometheus(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		matchingsCreated: counter("matchings_created_total", "Matchings created."),
		matchingsSettled: counter("matchings_settled_total", "Matchings moved to the settled state."),
		matchingsDeleted: counter("matchings_deleted_total", "Matchings deleted."),
		expensesAttached: counter("matching_expenses_attached_total", "Expense snapshots attached to matchings."),
		expensesDetached: counter("matching_expenses_detached_total", "Expense snapshots detached from matchings."),
		expensesDeleted:  counter("expenses_deleted_total", "Live expenses deleted."),
	}
	reg.MustRegister(
		r.matchingsCreated,
		r.matchingsSettled,
		r.matchingsDeleted,
		r.expensesAttached,
		r.expensesDetached,
		r.expensesDeleted,
	)
	return r
}

func counter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
}

func (r *PrometheusRecorder) IncMatchingCreated() { r.matchingsCreated.Inc() }
func (r *PrometheusRecorder) IncMatchingSettled() { r.matchingsSettled.Inc() }
func (r *PrometheusRecorder) IncMatchingDeleted() { r.matchingsDeleted.Inc() }
func (r *PrometheusRecorder) IncExpenseAttached() { r.expensesAttached.Inc() }
func (r *PrometheusRecorder) IncExpenseDetached() { r.expensesDetached.Inc() }
func (r *PrometheusRecorder) IncExpenseDeleted()  { r.expensesDeleted.Inc() }
