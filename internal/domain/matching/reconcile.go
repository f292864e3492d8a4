package matching

// ReconciledSnapshot pairs a snapshot with whether its source expense is gone.
type ReconciledSnapshot struct {
	*Snapshot
	IsDeleted bool
}

// Reconcile marks snapshots whose expense reference is nil or no longer in the
// live set. It never changes the snapshots themselves.
func Reconcile(snapshots []*Snapshot, liveExpenseGUIDs map[string]struct{}) []ReconciledSnapshot {
	out := make([]ReconciledSnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		deleted := true
		if g := s.ExpenseGUID(); g != nil {
			_, ok := liveExpenseGUIDs[*g]
			deleted = !ok
		}
		out = append(out, ReconciledSnapshot{Snapshot: s, IsDeleted: deleted})
	}
	return out
}

// AvailableToAttach returns the live expenses not already referenced by one of
// the snapshots. Order of live is preserved.
func AvailableToAttach[E any](live []E, guidOf func(E) string, snapshots []*Snapshot) []E {
	linked := make(map[string]struct{}, len(snapshots))
	for _, s := range snapshots {
		if g := s.ExpenseGUID(); g != nil {
			linked[*g] = struct{}{}
		}
	}

	out := make([]E, 0, len(live))
	for _, e := range live {
		if _, ok := linked[guidOf(e)]; ok {
			continue
		}
		out = append(out, e)
	}
	return out
}
