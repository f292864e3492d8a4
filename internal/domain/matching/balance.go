package matching

// Amounts whose absolute value is below this are treated as settled even.
const NoPaymentTolerance int64 = 1

type Participant struct {
	GUID string
	Name string
}

type UserTotal struct {
	UserGUID string
	Name     string
	Total    int64
}

// Pairwise is the two-user settlement. Balance is total(first) - total(second)
// in participant order; a positive value means the second user pays the first.
type Pairwise struct {
	Balance      int64
	PayerGUID    string
	ReceiverGUID string
	Amount       int64
	SettledEven  bool
}

type Balance struct {
	UserTotals []UserTotal
	GrandTotal int64
	// Pairwise is nil unless there are exactly two participants.
	Pairwise *Pairwise
	// PairwiseUnsupported is set for three or more participants.
	PairwiseUnsupported bool
}

// CalculateBalance derives per-user claim totals from the snapshots. Claims of
// snapshots whose owner is not a participant are ignored. The second return is
// false when there is nothing to compute (no snapshots or no participants).
func CalculateBalance(snapshots []*Snapshot, participants []Participant) (*Balance, bool) {
	if len(snapshots) == 0 || len(participants) == 0 {
		return nil, false
	}

	claims := make(map[string]int64, len(participants))
	for _, s := range snapshots {
		claims[s.UserGUID()] += s.ClaimAmount()
	}

	b := &Balance{UserTotals: make([]UserTotal, 0, len(participants))}
	for _, p := range participants {
		total := claims[p.GUID]
		b.UserTotals = append(b.UserTotals, UserTotal{UserGUID: p.GUID, Name: p.Name, Total: total})
		b.GrandTotal += total
	}

	switch {
	case len(participants) == 2:
		b.Pairwise = pairwise(b.UserTotals[0], b.UserTotals[1])
	case len(participants) > 2:
		b.PairwiseUnsupported = true
	}
	return b, true
}

func pairwise(a, other UserTotal) *Pairwise {
	diff := a.Total - other.Total
	p := &Pairwise{Balance: diff}

	if abs(diff) < NoPaymentTolerance {
		p.SettledEven = true
		p.PayerGUID = other.UserGUID
		p.ReceiverGUID = a.UserGUID
		return p
	}
	if diff > 0 {
		p.PayerGUID, p.ReceiverGUID, p.Amount = other.UserGUID, a.UserGUID, diff
	} else {
		p.PayerGUID, p.ReceiverGUID, p.Amount = a.UserGUID, other.UserGUID, -diff
	}
	return p
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
