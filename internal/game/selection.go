package game

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrSelectionBusy is returned by Begin while a session is already active.
// The active session is left untouched.
var ErrSelectionBusy = errors.New("selection session already active")

// SelectionOutcome is the terminal state of a finished session.
type SelectionOutcome int

const (
	SelectionPending SelectionOutcome = iota
	SelectionResolved
	SelectionCancelled
	SelectionTimedOut
)

func (o SelectionOutcome) String() string {
	switch o {
	case SelectionResolved:
		return "resolved"
	case SelectionCancelled:
		return "cancelled"
	case SelectionTimedOut:
		return "timed-out"
	default:
		return "pending"
	}
}

// SelectionOptions configures one session.
type SelectionOptions struct {
	Cancelable bool
	Timeout    time.Duration // 0 = no timeout; honoured only when cancelable
	// OnResolve runs after the session resolves with a member cell. It may
	// itself mutate the board or begin a fresh session.
	OnResolve func(c HexCoord)
	// OnCancel runs after cancellation or timeout.
	OnCancel func()
}

// Selection is the pending result handle of a session. Its fields are
// written exactly once, on the terminal transition.
type Selection struct {
	Outcome SelectionOutcome
	Chosen  HexCoord
	OK      bool // false for the empty selection of cancel/timeout
}

// Done reports whether the session has reached a terminal state.
func (s *Selection) Done() bool {
	return s.Outcome != SelectionPending
}

// SelectionController runs forced-selection sessions: interaction modes
// where all input is restricted to picking one cell from a supplied set.
// At most one session is active at a time; the guard is explicit here, not
// a process-wide singleton. While a session is active the drag controller
// routes pointer input to Submit and suppresses ordinary gestures.
type SelectionController struct {
	active   bool
	targets  map[HexCoord]bool
	prompt   string
	opts     SelectionOptions
	session  *Selection
	deadline time.Time

	now  func() time.Time
	elog *EventLog
	tick *int
}

// NewSelectionController creates an idle controller. The event log and tick
// pointer may be nil for standalone use.
func NewSelectionController(elog *EventLog, tick *int) *SelectionController {
	return &SelectionController{now: time.Now, elog: elog, tick: tick}
}

// SetClock injects the time source used for timeouts. Tests pass a fake.
func (sc *SelectionController) SetClock(now func() time.Time) {
	sc.now = now
}

// Active reports whether a session is in progress.
func (sc *SelectionController) Active() bool {
	return sc.active
}

// Prompt returns the active session's prompt, or "".
func (sc *SelectionController) Prompt() string {
	return sc.prompt
}

// IsTarget reports whether c is a member of the active target set.
func (sc *SelectionController) IsTarget(c HexCoord) bool {
	return sc.active && sc.targets[c]
}

// Targets returns a copy of the active target set.
func (sc *SelectionController) Targets() []HexCoord {
	if !sc.active {
		return nil
	}
	out := make([]HexCoord, 0, len(sc.targets))
	for c := range sc.targets {
		out = append(out, c)
	}
	return out
}

// Begin starts a session over the given target cells and returns its
// pending result handle. While another session is active it returns
// ErrSelectionBusy and changes nothing.
func (sc *SelectionController) Begin(targets []HexCoord, prompt string, opts SelectionOptions) (*Selection, error) {
	if sc.active {
		sc.record("selection", "busy", prompt)
		return nil, ErrSelectionBusy
	}
	sc.active = true
	sc.targets = make(map[HexCoord]bool, len(targets))
	for _, c := range targets {
		sc.targets[c] = true
	}
	sc.prompt = prompt
	sc.opts = opts
	sc.session = &Selection{}
	sc.deadline = time.Time{}
	if opts.Cancelable && opts.Timeout > 0 {
		sc.deadline = sc.now().Add(opts.Timeout)
	}
	sc.record("selection", "begin", prompt)
	return sc.session, nil
}

// Submit offers a cell to the active session. A member cell resolves the
// session (running OnResolve) and returns true; a non-member is a no-op and
// the session stays active. Submitting while idle is a caller-contract
// violation: it is logged loudly and ignored.
func (sc *SelectionController) Submit(c HexCoord) bool {
	if !sc.active {
		log.Printf("game: Submit(%v) with no active selection session", c)
		sc.record("error", "submit-idle", coordString(c))
		return false
	}
	if !sc.targets[c] {
		return false
	}
	cb := sc.opts.OnResolve
	sc.finish(SelectionResolved, c, true)
	sc.record("selection", "resolve", coordString(c))
	if cb != nil {
		cb(c)
	}
	return true
}

// Cancel ends the active session with an empty selection, if it was started
// as cancelable. Cancelling while idle is logged and ignored.
func (sc *SelectionController) Cancel() bool {
	if !sc.active {
		log.Printf("game: Cancel with no active selection session")
		sc.record("error", "cancel-idle", "")
		return false
	}
	if !sc.opts.Cancelable {
		return false
	}
	cb := sc.opts.OnCancel
	sc.finish(SelectionCancelled, HexCoord{}, false)
	sc.record("selection", "cancel", "")
	if cb != nil {
		cb()
	}
	return true
}

// Update checks the timeout. A cancelable session past its deadline behaves
// exactly as Cancel did; non-cancelable sessions ignore timeouts. The host
// calls this once per update turn.
func (sc *SelectionController) Update(now time.Time) {
	if !sc.active || sc.deadline.IsZero() || now.Before(sc.deadline) {
		return
	}
	cb := sc.opts.OnCancel
	sc.finish(SelectionTimedOut, HexCoord{}, false)
	sc.record("selection", "timeout", "")
	if cb != nil {
		cb()
	}
}

// finish fulfils the pending result exactly once and returns the controller
// to idle before any callback runs, so a fresh Begin is immediately
// possible from inside the callback.
func (sc *SelectionController) finish(outcome SelectionOutcome, chosen HexCoord, ok bool) {
	s := sc.session
	sc.active = false
	sc.targets = nil
	sc.prompt = ""
	sc.opts = SelectionOptions{}
	sc.session = nil
	sc.deadline = time.Time{}
	s.Outcome = outcome
	s.Chosen = chosen
	s.OK = ok
}

func (sc *SelectionController) record(category, key, value string) {
	if sc.elog == nil {
		return
	}
	tick := 0
	if sc.tick != nil {
		tick = *sc.tick
	}
	sc.elog.Add(tick, "--", category, key, value)
}

func coordString(c HexCoord) string {
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S)
}
