package pong

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventWallBounce
	EventOut
	EventPoint
	EventServe
	EventVictory
	EventStateChange
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventOut:
		return "ball_out"
	case EventPoint:
		return "point"
	case EventServe:
		return "serve"
	case EventVictory:
		return "victory"
	case EventStateChange:
		return "state_change"
	default:
		return "unknown"
	}
}

// Event is published to subscribers as the match progresses.
type Event struct {
	Tick      int
	Kind      EventKind
	Player    Player    // paddle owner, rally winner, receiver or victor
	Collision Collision // for bounces
	From, To  MatchState
	Angle     float64 // outgoing angle for bounces and serves
	Speed     float64
}

// Subscribe registers fn to receive every event. Handlers run synchronously
// inside the tick and must not call back into the match.
func (m *Match) Subscribe(fn func(Event)) {
	m.listeners = append(m.listeners, fn)
}

func (m *Match) emit(ev Event) {
	ev.Tick = m.tick
	m.recordEvent(ev)
	for _, fn := range m.listeners {
		fn(ev)
	}
}
