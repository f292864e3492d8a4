package matching

// State is derived from settled_at: null is Open, non-null is Settled.
// Settle is the only forward transition; nothing moves a matching back to Open
// except the administrative Update path.
type State string

const (
	StateOpen    State = "open"
	StateSettled State = "settled"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	return s == StateSettled
}
