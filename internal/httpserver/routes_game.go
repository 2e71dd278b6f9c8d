// internal/httpserver/routes_game.go
//
// HTTP routes for free-play rounds.
// Exposes four endpoints under /game:
//   - POST /game/new    → start a round (fresh 4x4 board, 180s clock)
//   - POST /game/submit → play one word against a round
//   - POST /game/toggle → flip a rule flag mid-round
//   - GET  /game/state  → snapshot of a round
//
// Sessions live in the in-memory store while the round runs; round history,
// high scores, and rule preferences are persisted in SQLite per owner (user
// ID or anonymous cookie ID). Each round gets one clock goroutine ticking
// the session once per second until it ends.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Jacoba1100254352/Boggle/internal/game"
	"github.com/Jacoba1100254352/Boggle/internal/grid"
	"github.com/Jacoba1100254352/Boggle/internal/rules"
	"github.com/Jacoba1100254352/Boggle/internal/words"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/submit", s.handleSubmit)
		r.Post("/toggle", s.handleToggle)
		r.Get("/state", s.handleState)
	})
}

// ownerOf resolves the round owner: the authenticated user if present,
// otherwise a stable anonymous cookie ID.
func (s *Server) ownerOf(w http.ResponseWriter, r *http.Request) (col, id string) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return "user_id", me.ID
	}
	return "anonymous_id", s.ensureAnonID(w, r)
}

// --------------------- persistence collaborators ----------------------------

// dbScores persists one owner's high score. Implements game.ScoreStore.
type dbScores struct {
	db      *sql.DB
	ownerID string
}

func (d dbScores) LoadHighScore(ctx context.Context) (int, error) {
	var v int
	err := d.db.QueryRowContext(ctx, `SELECT score FROM high_scores WHERE owner_id=?`, d.ownerID).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return v, err
}

func (d dbScores) SaveHighScore(ctx context.Context, score int) error {
	// The WHERE clause keeps the stored score monotonic even if two rounds
	// race on the same owner.
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO high_scores(owner_id, score, updated_at) VALUES(?,?,?)
		 ON CONFLICT(owner_id) DO UPDATE SET score=excluded.score, updated_at=excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		d.ownerID, score, time.Now().UTC().Format(time.RFC3339))
	return err
}

// dbPrefs persists one owner's rule flags. Implements game.FlagStore.
type dbPrefs struct {
	db      *sql.DB
	ownerID string
}

func (d dbPrefs) LoadFlags(ctx context.Context) (rules.Flags, error) {
	var v int
	err := d.db.QueryRowContext(ctx, `SELECT flags FROM rule_prefs WHERE owner_id=?`, d.ownerID).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return rules.DefaultFlags(), nil
	}
	return rules.Flags(v), err
}

func (d dbPrefs) SaveFlags(ctx context.Context, fs rules.Flags) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO rule_prefs(owner_id, flags, updated_at) VALUES(?,?,?)
		 ON CONFLICT(owner_id) DO UPDATE SET flags=excluded.flags, updated_at=excluded.updated_at`,
		d.ownerID, int(fs), time.Now().UTC().Format(time.RFC3339))
	return err
}

// ------------------------------ sessions ------------------------------------

// newSession builds and starts a round for one owner, wires the persistence
// collaborators, records the round row, and starts the clock. board pins
// the grid (daily mode, tests); nil means a fresh random board. onEnd, if
// set, runs once when the round ends.
func (s *Server) newSession(ctx context.Context, ownerCol, ownerID, mode string, board *grid.Grid, onEnd func(game.Snapshot)) (*game.Session, error) {
	sess := game.New(ctx, game.Config{
		Dict:   game.DictionaryFunc(words.Contains),
		Scores: dbScores{db: s.db, ownerID: ownerID},
		Prefs:  dbPrefs{db: s.db, ownerID: ownerID},
		OnChange: func(snap game.Snapshot) {
			s.persistProgress(snap)
			if snap.State == game.StateEnded {
				s.finishRound(ownerCol, ownerID, snap)
				if onEnd != nil {
					onEnd(snap)
				}
			}
		},
	})
	if err := sess.StartWith(board); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(`INSERT INTO rounds (id, `+ownerCol+`, mode, started_at, status, score, words)
	                        VALUES (?,?,?,?,?,0,0)`, sess.ID(), ownerID, mode, now, "inProgress"); err != nil {
		log.Warn().Err(err).Str("roundId", sess.ID()).Msg("insert round row")
	}

	go s.runClock(sess)
	return sess, nil
}

// runClock drives the session's countdown, one tick per real-time second,
// until the round ends.
func (s *Server) runClock(sess *game.Session) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for range t.C {
		if sess.Tick() == game.StateEnded {
			return
		}
	}
}

// persistProgress mirrors the running score into the round row (best effort).
func (s *Server) persistProgress(snap game.Snapshot) {
	if _, err := s.db.Exec(`UPDATE rounds SET score=?, words=? WHERE id=?`,
		snap.Score, len(snap.FoundWords), snap.ID); err != nil {
		log.Warn().Err(err).Str("roundId", snap.ID).Msg("update round progress")
	}
}

// finishRound marks the round row done and bumps user stats (best effort).
func (s *Server) finishRound(ownerCol, ownerID string, snap game.Snapshot) {
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(`UPDATE rounds SET status=?, finished_at=? WHERE id=? AND `+ownerCol+`=?`,
		"ended", now, snap.ID, ownerID); err != nil {
		log.Warn().Err(err).Str("roundId", snap.ID).Msg("finish round")
	}
	if ownerCol == "user_id" {
		if err := s.bumpStats(ownerID, snap.Score); err != nil {
			log.Warn().Err(err).Str("user", ownerID).Msg("bump stats")
		}
	}
}

// ------------------------------- handlers -----------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Board []string `json:"board"` // optional fixed board rows (testing)
}
type newGameRes struct {
	GameID string        `json:"gameId"`
	Round  game.Snapshot `json:"round"`
}

// handleNewGame starts a new round for the caller.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var board *grid.Grid
	if len(req.Board) > 0 {
		var err error
		board, err = grid.FromRows(req.Board)
		if err != nil {
			http.Error(w, `{"error":"invalid_board"}`, http.StatusBadRequest)
			return
		}
	}

	ownerCol, ownerID := s.ownerOf(w, r)
	sess, err := s.newSession(r.Context(), ownerCol, ownerID, "free", board, nil)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		http.Error(w, `{"error":"create_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID(), Round: sess.Snapshot()})
}

// submitReq/Res payloads for POST /game/submit.
type submitReq struct {
	GameID string       `json:"gameId"`
	Word   string       `json:"word"`
	Path   []grid.Coord `json:"path"` // the player's tapped selection, in order
}
type submitRes struct {
	Result game.Result   `json:"result"`
	Round  game.Snapshot `json:"round"`
}

// handleSubmit plays one word against a round. The path, when present, is
// rebuilt as a Selection so the append-order invariants (bounds, adjacency,
// no repeats) are enforced before the word reaches the session.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.sessions.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	var sel *grid.Selection
	if g := sess.Grid(); g != nil {
		sel = grid.NewSelection(g)
		for _, c := range req.Path {
			if err := sel.Append(c); err != nil {
				http.Error(w, `{"error":"invalid_path"}`, http.StatusBadRequest)
				return
			}
		}
		// A tapped path with no typed word plays the word it spells.
		if req.Word == "" && sel.Len() > 0 {
			req.Word = sel.Word()
		}
	}

	res := sess.Submit(r.Context(), req.Word, sel)
	_ = json.NewEncoder(w).Encode(submitRes{Result: res, Round: sess.Snapshot()})
}

// toggleReq payload for POST /game/toggle.
type toggleReq struct {
	GameID string `json:"gameId"`
	Flag   string `json:"flag"` // "minimumLength" | "uniqueWords"
}

// handleToggle flips one rule flag; the rebuilt pipeline applies from the
// next submit.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	f, ok := rules.ParseFlag(req.Flag)
	if !ok {
		http.Error(w, `{"error":"unknown_flag"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.sessions.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	fs := sess.Toggle(r.Context(), f)
	_ = json.NewEncoder(w).Encode(map[string]any{"enabledRules": fs.Names()})
}

// handleState returns a snapshot of a round.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), r.URL.Query().Get("gameId"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(sess.Snapshot())
}
