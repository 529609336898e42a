package sim

// EventKind identifies a discrete event worth reacting to.
type EventKind int

const (
	EventLand   EventKind = iota // Actor bounced on a platform
	EventBreak                   // A fragile platform was consumed by a landing
	EventExpire                  // A fragile platform ran out of lifetime
	EventPickup                  // Actor collected an item
	EventKill                    // An enemy died
	EventHit                     // Actor took damage
	EventSpawn                   // An enemy appeared
	EventBoost                   // Actor spent an energy charge
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLand:
		return "land"
	case EventBreak:
		return "break"
	case EventExpire:
		return "expire"
	case EventPickup:
		return "pickup"
	case EventKill:
		return "kill"
	case EventHit:
		return "hit"
	case EventSpawn:
		return "spawn"
	case EventBoost:
		return "boost"
	default:
		return "?"
	}
}

// Event is a single discrete occurrence within a tick.
type Event struct {
	Kind   EventKind
	X, Y   float64 // Where it happened
	Item   ItemKind
	Amount int // Damage, reward or health change
}

// Reason explains why a run ended.
type Reason string

const (
	ReasonNone Reason = ""
	ReasonFell Reason = "fell"
	ReasonDied Reason = "health"
)

// FrameEvents is the result of one Step.
type FrameEvents struct {
	ScoreDelta int
	GameOver   bool
	FinalScore int
	Reason     Reason
	Events     []Event
}

// Has reports whether an event of the given kind occurred.
func (f FrameEvents) Has(kind EventKind) bool {
	return f.Count(kind) > 0
}

// Count returns how many events of the given kind occurred.
func (f FrameEvents) Count(kind EventKind) int {
	n := 0
	for _, e := range f.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
