// internal/game/session.go
//
// Round session: the stateful coordinator for one game round.
// Responsibilities:
//   - Drive the NotStarted → InProgress → Ended lifecycle.
//   - Validate submissions: rule pipeline, then dictionary, then board
//     feasibility — the first failure wins and leaves state unchanged.
//   - Track found words and score; keep the high score monotonic across
//     rounds and persist it via the injected ScoreStore.
//   - Count the round clock down one Tick at a time.
//
// All mutation goes through one mutex, so a host that delivers Tick and
// Submit concurrently still sees score only increase and time only
// decrease. Observers are notified outside the lock.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/Jacoba1100254352/Boggle/internal/grid"
	"github.com/Jacoba1100254352/Boggle/internal/rules"
)

// DefaultDuration is the round length in seconds.
const DefaultDuration = 180

// Config carries the collaborators and knobs for a Session. Zero-value
// dimensions and duration fall back to the standard 4x4 board and
// 180-second round.
type Config struct {
	Rows     int
	Cols     int
	Duration int
	Dict     Dictionary
	Scores   ScoreStore     // optional; nil means high score is not persisted
	Prefs    FlagStore      // optional; nil means flags start at defaults
	OnChange func(Snapshot) // optional; called after starts, accepts, and round end
}

// Session holds the state of one game round.
type Session struct {
	mu sync.Mutex

	id       string
	rows     int
	cols     int
	duration int

	grid     *grid.Grid
	found    []string // display order = append order
	foundSet map[string]struct{}
	score    int
	high     int
	timeLeft int
	state    State

	flags  rules.Flags
	engine *rules.Engine

	dict     Dictionary
	scores   ScoreStore
	prefs    FlagStore
	onChange func(Snapshot)
}

// New constructs a Session in the NotStarted state. Persisted rule flags
// and high score are loaded here; either collaborator failing degrades to
// defaults (all rules enabled, high score 0) rather than blocking play.
func New(ctx context.Context, cfg Config) *Session {
	s := &Session{
		id:       randomID(),
		rows:     cfg.Rows,
		cols:     cfg.Cols,
		duration: cfg.Duration,
		foundSet: make(map[string]struct{}),
		state:    StateNotStarted,
		flags:    rules.DefaultFlags(),
		dict:     cfg.Dict,
		scores:   cfg.Scores,
		prefs:    cfg.Prefs,
		onChange: cfg.OnChange,
	}
	if s.rows <= 0 {
		s.rows = grid.DefaultRows
	}
	if s.cols <= 0 {
		s.cols = grid.DefaultCols
	}
	if s.duration <= 0 {
		s.duration = DefaultDuration
	}
	if s.prefs != nil {
		if fs, err := s.prefs.LoadFlags(ctx); err == nil {
			s.flags = fs
		}
	}
	if s.scores != nil {
		if hs, err := s.scores.LoadHighScore(ctx); err == nil && hs > 0 {
			s.high = hs
		}
	}
	s.engine = rules.ForFlags(s.flags)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Grid returns the active board, or nil before the first Start.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins a round on a fresh random board. Starting discards any
// in-flight round state; only the high score survives across rounds.
func (s *Session) Start() error { return s.StartWith(nil) }

// StartWith begins a round on g, or on a fresh random board when g is nil.
// Used by the daily mode and tests to pin the board.
func (s *Session) StartWith(g *grid.Grid) error {
	if g == nil {
		var err error
		g, err = grid.New(s.rows, s.cols)
		if err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.grid = g
	s.found = nil
	s.foundSet = make(map[string]struct{})
	s.score = 0
	s.timeLeft = s.duration
	s.state = StateInProgress
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
	return nil
}

// Tick counts down one time unit. On reaching zero the round ends; once
// ended further ticks have no effect. Returns the state after the tick.
func (s *Session) Tick() State {
	s.mu.Lock()
	if s.state != StateInProgress {
		st := s.state
		s.mu.Unlock()
		return st
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	var snap Snapshot
	ended := false
	if s.timeLeft == 0 {
		s.state = StateEnded
		ended = true
		snap = s.snapshotLocked()
	}
	st := s.state
	s.mu.Unlock()
	if ended {
		s.notify(snap)
	}
	return st
}

// Submit plays one word against the current round.
//
// Order of checks: rule pipeline, then dictionary membership, then board
// feasibility. The first failure is returned as a non-fatal Result with the
// failing reason and leaves round state untouched. Empty words are ignored
// silently. On acceptance the word joins the found set and the score grows
// by the rule bonus plus the scoring-table value; a new best score is
// persisted via the ScoreStore.
func (s *Session) Submit(ctx context.Context, word string, sel *grid.Selection) Result {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return Result{}
	}
	res, snap, accepted := s.submitLocked(ctx, w, sel)
	if accepted {
		s.notify(snap)
	}
	return res
}

// submitLocked runs the validation chain and applies an acceptance under
// the session lock. Returns the snapshot for observer notification when
// the word was accepted.
func (s *Session) submitLocked(ctx context.Context, w string, sel *grid.Selection) (Result, Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reject := func(reason string) (Result, Snapshot, bool) {
		return Result{Word: w, Reason: reason, Score: s.score}, Snapshot{}, false
	}
	if s.state != StateInProgress {
		return reject(ReasonNotInProgress)
	}
	rctx := rules.Context{Grid: s.grid, PreviousWords: s.foundSet}
	out := s.engine.Evaluate(w, sel, rctx)
	if out.Rejected {
		return reject(out.Reason)
	}
	if s.dict == nil || !s.dict.Contains(w) {
		return reject(ReasonNotInDictionary)
	}
	if !grid.ExistsOnBoard(w, s.grid) {
		return reject(ReasonNotOnBoard)
	}

	points := Score(w)
	s.found = append(s.found, w)
	s.foundSet[w] = struct{}{}
	s.score += out.Bonus + points
	if s.score > s.high {
		s.high = s.score
		if s.scores != nil {
			// Best effort; a failed save must not block play.
			_ = s.scores.SaveHighScore(ctx, s.high)
		}
	}
	res := Result{Word: w, Accepted: true, Points: points, Bonus: out.Bonus, Score: s.score}
	return res, s.snapshotLocked(), true
}

// Toggle flips one rule flag and rebuilds the pipeline in canonical order.
// May be called mid-round; it takes effect on the next Submit. The updated
// flag set is persisted best-effort and returned.
func (s *Session) Toggle(ctx context.Context, f rules.Flag) rules.Flags {
	s.mu.Lock()
	s.flags = s.flags.Toggle(f)
	s.engine = rules.ForFlags(s.flags)
	fs := s.flags
	s.mu.Unlock()
	if s.prefs != nil {
		_ = s.prefs.SaveFlags(ctx, fs)
	}
	return fs
}

// Flags returns the currently enabled rule flags.
func (s *Session) Flags() rules.Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// Snapshot returns a consistent copy of the round state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked builds a Snapshot; callers must hold s.mu.
func (s *Session) snapshotLocked() Snapshot {
	found := make([]string, len(s.found))
	copy(found, s.found)
	var board []string
	if s.grid != nil {
		board = s.grid.RowStrings()
	}
	return Snapshot{
		ID:            s.id,
		Board:         board,
		FoundWords:    found,
		Score:         s.score,
		HighScore:     s.high,
		TimeRemaining: s.timeLeft,
		State:         s.state,
		Flags:         s.flags,
		EnabledRules:  s.flags.Names(),
	}
}

// notify invokes the observer callback, if any, outside the lock.
func (s *Session) notify(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
