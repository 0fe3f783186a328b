package engine

import "time"

// Status is the run status of a game.
type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusPaused
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusStopped:
		return "stopped"
	}
	return "unknown"
}

// Observer is notified synchronously whenever the run status changes.
// When the status is changed by an Engine the call happens while the
// engine is locked, so observers must not call back into the Engine; read
// the GameState they are handed instead.
type Observer interface {
	GameStateChanged(s *GameState)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s *GameState)

func (f ObserverFunc) GameStateChanged(s *GameState) { f(s) }

// GameState aggregates everything that changes between frames. It is owned
// by the embedding application and mutated only from the engine's tick.
type GameState struct {
	Player     Player
	Map        *Map
	Weapon     *Weapon
	FrameCount uint64
	LastUpdate time.Time

	status    Status
	observers []observerEntry
	nextID    int
}

type observerEntry struct {
	id int
	o  Observer
}

func NewGameState(player Player, m *Map) *GameState {
	return &GameState{
		Player: player,
		Map:    m,
		Weapon: NewWeapon(),
	}
}

func (s *GameState) Status() Status { return s.status }

// SetStatus changes the status and notifies observers if it differs.
func (s *GameState) SetStatus(status Status) {
	if s.status == status {
		return
	}
	s.status = status
	for _, e := range s.observers {
		e.o.GameStateChanged(s)
	}
}

// AddObserver registers o and returns a function that removes it.
func (s *GameState) AddObserver(o Observer) (remove func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observerEntry{id: id, o: o})
	return func() {
		for i, e := range s.observers {
			if e.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}
