package game

import (
	"log/slog"
	"sync"

	"snake-sim/game/types"
)

// ScoreRecord is one terminal outcome, appended to the scoreboard in
// game-over order.
type ScoreRecord struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Recorder receives exactly one record per game over.
type Recorder interface {
	Record(ScoreRecord)
}

// HighScoreStore persists the single best-score scalar. Store failures
// are best-effort and never surface to the player.
type HighScoreStore interface {
	Load() int
	Store(score int) error
}

// Identifier supplies the name attached to a scoreboard record at game
// over. A nil func or empty result falls back to DefaultPlayerName.
type Identifier func() string

const DefaultPlayerName = "player"

// Session sequences ticks under the host clock and owns the
// paused/running/game-over state. A single mutex guards every entry
// point, so a multi-threaded host never observes a partial tick.
type Session struct {
	mu     sync.Mutex
	game   *Game
	intent types.Direction
	acc    float64
	paused bool
	over   bool

	highScore int
	scores    Recorder
	store     HighScoreStore
	identify  Identifier
}

// NewSession wraps g. The session starts paused; call Start to begin
// accepting clock time.
func NewSession(g *Game, scores Recorder, store HighScoreStore, identify Identifier) *Session {
	s := &Session{
		game:     g,
		paused:   true,
		scores:   scores,
		store:    store,
		identify: identify,
	}
	if store != nil {
		s.highScore = store.Load()
	}
	return s
}

func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

// Pause suspends time accumulation. The partial step already
// accumulated survives, so Resume continues where ticking left off.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
}

func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

func (s *Session) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
}

// Reset restores the initial game state and resumes running. The high
// score and scoreboard history are untouched.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
	s.intent = types.DirNone
	s.acc = 0
	s.paused = false
	s.over = false
	slog.Info("session reset")
}

// SetIntent records the latest directional request. Last write wins;
// the value is applied at the start of the next tick.
func (s *Session) SetIntent(d types.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intent = d
}

// Drive feeds elapsed host seconds into the session. Whole steps are
// consumed one at a time, re-reading the step interval between ticks so
// a speed pickup takes effect within the same call. After a Terminated
// result the session stops ticking until Reset.
func (s *Session) Drive(elapsed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused || s.over {
		return
	}

	s.acc += elapsed
	for s.acc >= s.game.StepInterval() {
		step := s.game.StepInterval()
		s.acc -= step

		res := s.game.Tick(s.intent, step)
		if res.Terminated {
			s.finish(res.Score)
			return
		}
		s.raiseHighScore(res.Score)
	}
}

func (s *Session) finish(score int) {
	s.over = true
	name := DefaultPlayerName
	if s.identify != nil {
		if n := s.identify(); n != "" {
			name = n
		}
	}
	if s.scores != nil {
		s.scores.Record(ScoreRecord{Name: name, Score: score})
	}
	s.raiseHighScore(score)
	slog.Info("game over", "player", name, "score", score, "high_score", s.highScore)
}

func (s *Session) raiseHighScore(score int) {
	if score <= s.highScore {
		return
	}
	s.highScore = score
	if s.store != nil {
		// Best effort; a failed write just means the record is lost.
		_ = s.store.Store(score)
	}
}

func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over
}

// Snapshot projects the wrapped game plus session-level flags.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.game.Snapshot()
	snap.HighScore = s.highScore
	snap.Paused = s.paused
	snap.Over = s.over || snap.Over
	return snap
}
