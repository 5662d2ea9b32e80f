package tetris

import "strings"

// Phase is the stage of a game.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Spawn position of every new active piece.
const (
	SpawnX = 4
	SpawnY = 0
)

// State is a complete snapshot of a game. Transitions never modify a State in
// place; Reduce returns a new value. Shapes are shared between snapshots and
// must be treated as read-only.
type State struct {
	Phase  Phase
	Board  Board
	Active Piece
	Next   Piece
	X, Y   int

	Score  int
	Lines  int
	Pieces int

	// FinalScore is the score reached by the game that just ended. It is set on
	// entering PhaseGameOver, when Score has already been reset.
	FinalScore int
}

// Ghost returns the row the active piece would land on if dropped in its
// current column.
func (s State) Ghost() int {
	return DropRow(s.Board, s.Active, s.X)
}

// Playing reports whether the game accepts movement input.
func (s State) Playing() bool {
	return s.Phase == PhaseRunning
}

// Action is an inbound command for the engine.
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionTick
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionTogglePause
	ActionAcknowledge

	// ActionConfirm starts a game from the title screen and acknowledges a game
	// over, so a single key can serve both prompts.
	ActionConfirm
)

var actionNames = [...]string{
	ActionNone:        "none",
	ActionStart:       "start",
	ActionTick:        "tick",
	ActionMoveLeft:    "move-left",
	ActionMoveRight:   "move-right",
	ActionSoftDrop:    "soft-drop",
	ActionRotate:      "rotate",
	ActionTogglePause: "toggle-pause",
	ActionAcknowledge: "acknowledge",
	ActionConfirm:     "confirm",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Event flags describe what a transition did.
type Event uint16

const (
	EventStarted Event = 1 << iota
	EventMoved
	EventRotated
	EventDropped
	EventSettled
	EventLinesCleared
	EventGameOver
	EventPaused
	EventResumed
	EventAcknowledged
)

var eventNames = [...]string{
	"started", "moved", "rotated", "dropped", "settled",
	"lines-cleared", "game-over", "paused", "resumed", "acknowledged",
}

// String lists the set flags joined by '|'.
func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	for i, name := range eventNames {
		if e&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Outcome reports the effects of one transition.
type Outcome struct {
	Events  Event
	Cleared int
}

// Has reports whether e is among the outcome's events.
func (o Outcome) Has(e Event) bool {
	return o.Events&e != 0
}

// Changed reports whether the transition altered the state.
func (o Outcome) Changed() bool {
	return o.Events != 0
}

// Reduce applies action to s and returns the resulting state. Actions that do
// not apply to the current phase, or that would collide, return s unchanged
// with an empty outcome. rng is consulted only when pieces are rolled.
func Reduce(s State, action Action, rng Rand) (State, Outcome) {
	switch action {
	case ActionConfirm:
		switch s.Phase {
		case PhaseNotStarted:
			return start(s, rng)
		case PhaseGameOver:
			return acknowledge(s)
		}
		return s, Outcome{}

	case ActionStart:
		return start(s, rng)

	case ActionAcknowledge:
		return acknowledge(s)

	case ActionTogglePause:
		switch s.Phase {
		case PhaseRunning:
			s.Phase = PhasePaused
			return s, Outcome{Events: EventPaused}
		case PhasePaused:
			s.Phase = PhaseRunning
			return s, Outcome{Events: EventResumed}
		}
		return s, Outcome{}
	}

	if s.Phase != PhaseRunning {
		return s, Outcome{}
	}

	switch action {
	case ActionMoveLeft:
		return shift(s, -1, 0, EventMoved)
	case ActionMoveRight:
		return shift(s, 1, 0, EventMoved)
	case ActionSoftDrop:
		return shift(s, 0, 1, EventDropped)
	case ActionRotate:
		rotated := s.Active.Rotate()
		if Collides(s.Board, rotated, s.X, s.Y) {
			return s, Outcome{}
		}
		s.Active = rotated
		return s, Outcome{Events: EventRotated}
	case ActionTick:
		if !Collides(s.Board, s.Active, s.X, s.Y+1) {
			s.Y++
			return s, Outcome{Events: EventDropped}
		}
		return settle(s, rng)
	}

	return s, Outcome{}
}

func start(s State, rng Rand) (State, Outcome) {
	if s.Phase != PhaseNotStarted {
		return s, Outcome{}
	}

	active := RandomPiece(rng)
	next := RandomPiece(rng)
	return State{
		Phase:  PhaseRunning,
		Active: active,
		Next:   next,
		X:      SpawnX,
		Y:      SpawnY,
	}, Outcome{Events: EventStarted}
}

func acknowledge(s State) (State, Outcome) {
	if s.Phase != PhaseGameOver {
		return s, Outcome{}
	}
	return State{}, Outcome{Events: EventAcknowledged}
}

func shift(s State, dx, dy int, event Event) (State, Outcome) {
	if Collides(s.Board, s.Active, s.X+dx, s.Y+dy) {
		return s, Outcome{}
	}
	s.X += dx
	s.Y += dy
	return s, Outcome{Events: event}
}

// settle merges the active piece, clears rows, promotes the next piece and
// checks that it fits at the spawn point against the settled board.
func settle(s State, rng Rand) (State, Outcome) {
	out := Outcome{Events: EventSettled}

	board := Merge(s.Board, s.Active, s.X, s.Y)
	board, cleared := ClearLines(board)
	if cleared > 0 {
		out.Events |= EventLinesCleared
		out.Cleared = cleared
	}

	score := s.Score + cleared*LinePoints
	active := s.Next
	if active.IsZero() {
		active = RandomPiece(rng)
	}
	next := RandomPiece(rng)

	if Collides(board, active, SpawnX, SpawnY) {
		out.Events |= EventGameOver
		return State{
			Phase:      PhaseGameOver,
			FinalScore: score,
		}, out
	}

	return State{
		Phase:  PhaseRunning,
		Board:  board,
		Active: active,
		Next:   next,
		X:      SpawnX,
		Y:      SpawnY,
		Score:  score,
		Lines:  s.Lines + cleared,
		Pieces: s.Pieces + 1,
	}, out
}
