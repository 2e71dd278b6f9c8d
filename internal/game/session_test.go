package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jacoba1100254352/Boggle/internal/grid"
	"github.com/Jacoba1100254352/Boggle/internal/rules"
)

// ---------------------------- fakes ----------------------------------------

type fakeDict map[string]struct{}

func (d fakeDict) Contains(w string) bool {
	_, ok := d[w]
	return ok
}

func dictOf(words ...string) fakeDict {
	d := make(fakeDict, len(words))
	for _, w := range words {
		d[w] = struct{}{}
	}
	return d
}

type fakeScores struct {
	v       int
	loadErr error
	saveErr error
	saves   []int
}

func (f *fakeScores) LoadHighScore(context.Context) (int, error) { return f.v, f.loadErr }
func (f *fakeScores) SaveHighScore(_ context.Context, s int) error {
	f.saves = append(f.saves, s)
	if f.saveErr != nil {
		return f.saveErr
	}
	f.v = s
	return nil
}

type fakePrefs struct {
	fs      rules.Flags
	loadErr error
	saved   []rules.Flags
}

func (f *fakePrefs) LoadFlags(context.Context) (rules.Flags, error) { return f.fs, f.loadErr }
func (f *fakePrefs) SaveFlags(_ context.Context, fs rules.Flags) error {
	f.saved = append(f.saved, fs)
	f.fs = fs
	return nil
}

// ---------------------------- helpers ---------------------------------------

var testBoard = []string{
	"cats",
	"doge",
	"xyzw",
	"qrst",
}

func startSession(t *testing.T, cfg Config, board []string) *Session {
	t.Helper()
	s := New(context.Background(), cfg)
	g, err := grid.FromRows(board)
	require.NoError(t, err)
	require.NoError(t, s.StartWith(g))
	return s
}

func pathSelection(t *testing.T, g *grid.Grid, coords ...grid.Coord) *grid.Selection {
	t.Helper()
	sel := grid.NewSelection(g)
	for _, c := range coords {
		require.NoError(t, sel.Append(c))
	}
	return sel
}

// ----------------------------- tests ----------------------------------------

func TestStartResetsState(t *testing.T) {
	s := New(context.Background(), Config{Dict: dictOf("cat")})
	assert.Equal(t, StateNotStarted, s.State())
	assert.Nil(t, s.Grid())

	require.NoError(t, s.Start())
	snap := s.Snapshot()
	assert.Equal(t, StateInProgress, snap.State)
	assert.Equal(t, DefaultDuration, snap.TimeRemaining)
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.FoundWords)
	assert.Len(t, snap.Board, grid.DefaultRows)
}

func TestSubmitAcceptsPlayableWord(t *testing.T) {
	s := startSession(t, Config{Dict: dictOf("cat")}, testBoard)
	sel := pathSelection(t, s.Grid(), grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 0, Col: 2})

	res := s.Submit(context.Background(), "CAT", sel)
	require.True(t, res.Accepted, "reason: %s", res.Reason)
	assert.Equal(t, "cat", res.Word)
	assert.Equal(t, 1, res.Points)
	assert.Equal(t, 0, res.Bonus)
	assert.Equal(t, 1, res.Score)

	snap := s.Snapshot()
	assert.Equal(t, []string{"cat"}, snap.FoundWords)
	assert.Equal(t, 1, snap.Score)
}

func TestSubmitDuplicateRejected(t *testing.T) {
	s := startSession(t, Config{Dict: dictOf("cat")}, testBoard)

	res := s.Submit(context.Background(), "cat", nil)
	require.True(t, res.Accepted)

	res = s.Submit(context.Background(), "cat", nil)
	require.False(t, res.Accepted)
	assert.Equal(t, rules.ReasonAlreadyPlayed, res.Reason)
	assert.Equal(t, 1, s.Snapshot().Score, "state unchanged on rejection")
}

func TestSubmitTooShort(t *testing.T) {
	// "ox" is in the dictionary; the length rule still rejects it first,
	// board feasibility never comes into play.
	s := startSession(t, Config{Dict: dictOf("ox")}, testBoard)

	res := s.Submit(context.Background(), "ox", nil)
	require.False(t, res.Accepted)
	assert.Equal(t, rules.ReasonTooShort, res.Reason)
	assert.Empty(t, s.Snapshot().FoundWords)
}

func TestSubmitNotInDictionary(t *testing.T) {
	s := startSession(t, Config{Dict: dictOf("cat")}, testBoard)

	res := s.Submit(context.Background(), "cats", nil)
	require.False(t, res.Accepted)
	assert.Equal(t, ReasonNotInDictionary, res.Reason)
}

func TestSubmitNotOnBoard(t *testing.T) {
	// Passes rules and dictionary, but no path spells it.
	s := startSession(t, Config{Dict: dictOf("zoo")}, testBoard)

	res := s.Submit(context.Background(), "zoo", nil)
	require.False(t, res.Accepted)
	assert.Equal(t, ReasonNotOnBoard, res.Reason)
	assert.Equal(t, 0, s.Snapshot().Score)
}

func TestSubmitChecksRulesBeforeDictionary(t *testing.T) {
	s := startSession(t, Config{Dict: dictOf("cat")}, testBoard)

	// Too short AND missing from the dictionary: the rule reason wins.
	res := s.Submit(context.Background(), "xy", nil)
	assert.Equal(t, rules.ReasonTooShort, res.Reason)

	// With the length rule off, the dictionary miss surfaces instead.
	s.Toggle(context.Background(), rules.FlagMinimumLength)
	res = s.Submit(context.Background(), "xy", nil)
	assert.Equal(t, ReasonNotInDictionary, res.Reason)
}

func TestSubmitEmptyWordIgnored(t *testing.T) {
	s := startSession(t, Config{Dict: dictOf("cat")}, testBoard)

	res := s.Submit(context.Background(), "   ", nil)
	assert.False(t, res.Accepted)
	assert.Empty(t, res.Reason, "empty submissions are silent")
	assert.Empty(t, s.Snapshot().FoundWords)
}

func TestSubmitOutsideRound(t *testing.T) {
	s := New(context.Background(), Config{Dict: dictOf("cat")})
	res := s.Submit(context.Background(), "cat", nil)
	assert.Equal(t, ReasonNotInProgress, res.Reason)
}

func TestScoreInvariant(t *testing.T) {
	words := []string{"cat", "cats", "dog", "doge", "oat", "gate"}
	s := startSession(t, Config{Dict: dictOf(words...)}, testBoard)

	want := 0
	for _, w := range words {
		res := s.Submit(context.Background(), w, nil)
		require.True(t, res.Accepted, "%s: %s", w, res.Reason)
		want += Score(w) + res.Bonus
	}
	snap := s.Snapshot()
	assert.Equal(t, want, snap.Score, "score equals the sum over accepted words")
	assert.Equal(t, words, snap.FoundWords, "display order is append order")
}

func TestHighScorePersistence(t *testing.T) {
	scores := &fakeScores{v: 2}
	s := startSession(t, Config{Dict: dictOf("cat", "cats"), Scores: scores}, testBoard)
	assert.Equal(t, 2, s.Snapshot().HighScore, "persisted high score loaded at construction")

	// 1 point: below the stored best, nothing saved.
	require.True(t, s.Submit(context.Background(), "cat", nil).Accepted)
	assert.Empty(t, scores.saves)
	assert.Equal(t, 2, s.Snapshot().HighScore)

	// +1 point: ties are not a new best; +1 more beats it.
	require.True(t, s.Submit(context.Background(), "cats", nil).Accepted)
	assert.Empty(t, scores.saves)
	s2 := startSession(t, Config{Dict: dictOf("cat", "cats", "dog"), Scores: scores}, testBoard)
	for _, w := range []string{"cat", "cats", "dog"} {
		require.True(t, s2.Submit(context.Background(), w, nil).Accepted)
	}
	assert.Equal(t, []int{3}, scores.saves)
	assert.Equal(t, 3, s2.Snapshot().HighScore)
}

func TestHighScoreDegradesOnFailures(t *testing.T) {
	scores := &fakeScores{v: 9, loadErr: errors.New("disk gone")}
	s := startSession(t, Config{Dict: dictOf("cat"), Scores: scores}, testBoard)
	assert.Equal(t, 0, s.Snapshot().HighScore, "load failure falls back to 0")

	scores.saveErr = errors.New("disk still gone")
	res := s.Submit(context.Background(), "cat", nil)
	assert.True(t, res.Accepted, "failed save must not block play")
	assert.Equal(t, 1, s.Snapshot().Score)
}

func TestPrefsLoadedAtConstruction(t *testing.T) {
	prefs := &fakePrefs{fs: rules.Flags(rules.FlagMinimumLength)} // uniqueness off
	s := startSession(t, Config{Dict: dictOf("cat"), Prefs: prefs}, testBoard)

	require.True(t, s.Submit(context.Background(), "cat", nil).Accepted)
	res := s.Submit(context.Background(), "cat", nil)
	assert.True(t, res.Accepted, "duplicates allowed when uniqueness is disabled")
	assert.Equal(t, 2, s.Snapshot().Score)
}

func TestPrefsDegradeToDefaults(t *testing.T) {
	prefs := &fakePrefs{loadErr: errors.New("no prefs")}
	s := startSession(t, Config{Dict: dictOf("cat"), Prefs: prefs}, testBoard)
	assert.Equal(t, rules.DefaultFlags(), s.Flags())
}

func TestToggleMidRound(t *testing.T) {
	prefs := &fakePrefs{fs: rules.DefaultFlags()}
	s := startSession(t, Config{Dict: dictOf("cat"), Prefs: prefs}, testBoard)

	require.True(t, s.Submit(context.Background(), "cat", nil).Accepted)
	assert.Equal(t, rules.ReasonAlreadyPlayed, s.Submit(context.Background(), "cat", nil).Reason)

	fs := s.Toggle(context.Background(), rules.FlagUniqueWords)
	assert.False(t, fs.Has(rules.FlagUniqueWords))
	assert.Equal(t, []rules.Flags{fs}, prefs.saved, "toggled flags are persisted")
	assert.True(t, s.Submit(context.Background(), "cat", nil).Accepted, "takes effect on next submit")

	// Toggling back restores the original decisions.
	s.Toggle(context.Background(), rules.FlagUniqueWords)
	assert.Equal(t, rules.DefaultFlags(), s.Flags())
	assert.Equal(t, rules.ReasonAlreadyPlayed, s.Submit(context.Background(), "cat", nil).Reason)
}

func TestTickCountsDownToEnded(t *testing.T) {
	s := startSession(t, Config{Dict: dictOf("cat")}, testBoard)
	require.Equal(t, DefaultDuration, s.Snapshot().TimeRemaining)

	for i := 0; i < DefaultDuration-1; i++ {
		assert.Equal(t, StateInProgress, s.Tick())
	}
	assert.Equal(t, 1, s.Snapshot().TimeRemaining)

	assert.Equal(t, StateEnded, s.Tick(), "tick 180 ends the round")
	assert.Equal(t, 0, s.Snapshot().TimeRemaining)

	assert.Equal(t, StateEnded, s.Tick(), "tick 181 is a no-op")
	assert.Equal(t, 0, s.Snapshot().TimeRemaining)

	res := s.Submit(context.Background(), "cat", nil)
	assert.Equal(t, ReasonNotInProgress, res.Reason)
}

func TestRestartDiscardsRoundState(t *testing.T) {
	scores := &fakeScores{}
	s := startSession(t, Config{Dict: dictOf("cat"), Scores: scores}, testBoard)
	require.True(t, s.Submit(context.Background(), "cat", nil).Accepted)

	require.NoError(t, s.Start())
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.FoundWords)
	assert.Equal(t, DefaultDuration, snap.TimeRemaining)
	assert.Equal(t, 1, snap.HighScore, "high score survives round boundaries")
}

func TestOnChangeNotifications(t *testing.T) {
	var states []State
	cfg := Config{
		Dict:     dictOf("cat"),
		Duration: 2,
		OnChange: func(snap Snapshot) { states = append(states, snap.State) },
	}
	s := startSession(t, cfg, testBoard)
	require.True(t, s.Submit(context.Background(), "cat", nil).Accepted)
	s.Submit(context.Background(), "cat", nil) // rejection: no notification
	s.Tick()
	s.Tick() // ends the round
	s.Tick() // no-op

	assert.Equal(t, []State{StateInProgress, StateInProgress, StateEnded}, states)
}
