package bench

// Forwards every event to all of its listeners, in order
type ArenaListener struct {
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	al := &ArenaListener{listeners: make([]ListenerLike, 0, len(listeners))}
	for _, l := range listeners {
		al.Add(l)
	}
	return al
}

// Add a listener, nil values are ignored
func (al *ArenaListener) Add(l ListenerLike) *ArenaListener {
	if l != nil {
		al.listeners = append(al.listeners, l)
	}
	return al
}

func (al *ArenaListener) Len() int {
	return len(al.listeners)
}

func (al *ArenaListener) OnGameStart(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnGameStart(info)
	}
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener) Summary(summary VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(summary)
	}
}
