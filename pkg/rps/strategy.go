package rps

// Capability set every player implements. A strategy instance belongs to
// exactly one game session and is not safe for concurrent use.
type Strategy interface {
	// Choose the next throw, must not change what the strategy has learned
	SelectMove() Move
	// Feed back the round that was just played
	Observe(own, opponent Move)
}

// Strategies owning large buffers may implement this to drop them early,
// the strategy must not be used afterwards
type Releaser interface {
	Release()
}

// Optional, used for reports and logs
type Named interface {
	Name() string
}

// Calls Release if the strategy supports it
func Release(s Strategy) {
	if r, ok := s.(Releaser); ok {
		r.Release()
	}
}

// Returns strategy's name, or fallback if it has none
func NameOf(s Strategy, fallback string) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return fallback
}
