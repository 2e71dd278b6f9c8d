// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's round (same board for everyone)
//   - POST /daily/submit      → play a word against your daily round
//   - GET  /daily/leaderboard → top 20 scores for today (or a given date)
//
// Each owner plays once per day (enforced by DB + in-memory session map).
// Sessions are held in memory for active play; the final score is persisted
// when the round ends. Deterministic board selection is based on date + salt.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Jacoba1100254352/Boggle/internal/daily"
	"github.com/Jacoba1100254352/Boggle/internal/game"
	"github.com/Jacoba1100254352/Boggle/internal/grid"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]string // gameID per ownerID|date
	mu       sync.Mutex        // guards sessions
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]string),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/submit", dd.handleSubmit)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// boardForToday returns today's date key and the shared deterministic board.
func (d *dailyServer) boardForToday() (date string, board *grid.Grid, err error) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	board, err = grid.FromSeed(grid.DefaultRows, grid.DefaultCols, daily.GridSeed(now, d.salt))
	return date, board, err
}

// handleNew starts (or resumes) the caller's daily round.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	ownerCol, ownerID := d.srv.ownerOf(w, r)
	date, board, err := d.boardForToday()
	if err != nil {
		http.Error(w, `{"error":"board_failed"}`, http.StatusInternalServerError)
		return
	}

	played, err := d.store.AlreadyPlayed(r.Context(), ownerID, date)
	if err != nil {
		log.Warn().Err(err).Msg("daily already-played check")
	}
	if played {
		http.Error(w, `{"error":"already_played"}`, http.StatusConflict)
		return
	}

	key := ownerID + "|" + date

	// Resume an in-flight daily round rather than minting a second board.
	if sess := d.resume(r.Context(), key); sess != nil {
		_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID(), Round: sess.Snapshot()})
		return
	}

	sess, err := d.srv.newSession(r.Context(), ownerCol, ownerID, "daily", board, func(snap game.Snapshot) {
		err := d.store.InsertResult(context.Background(), daily.Result{
			OwnerID: ownerID,
			Date:    date,
			Score:   snap.Score,
			Words:   len(snap.FoundWords),
		})
		if err != nil {
			log.Warn().Err(err).Str("owner", ownerID).Str("date", date).Msg("record daily result")
		}
		d.mu.Lock()
		delete(d.sessions, key)
		d.mu.Unlock()
	})
	if err != nil {
		log.Error().Err(err).Msg("create daily session")
		http.Error(w, `{"error":"create_failed"}`, http.StatusInternalServerError)
		return
	}

	d.mu.Lock()
	d.sessions[key] = sess.ID()
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID(), Round: sess.Snapshot()})
}

// resume returns the live session for key, dropping stale map entries.
func (d *dailyServer) resume(ctx context.Context, key string) *game.Session {
	d.mu.Lock()
	gameID, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok {
		return nil
	}
	sess, err := d.srv.sessions.Get(ctx, gameID)
	if err == nil && sess.State() == game.StateInProgress {
		return sess
	}
	d.mu.Lock()
	delete(d.sessions, key)
	d.mu.Unlock()
	return nil
}

// handleSubmit plays a word against a daily round. Validation is identical
// to free play; only the board provenance differs.
func (d *dailyServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	d.srv.handleSubmit(w, r)
}

// handleLeaderboard returns the top 20 results for ?date= (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = daily.DateKey(time.Now().UTC())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []daily.LBRow{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "rows": rows})
}
