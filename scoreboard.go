package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"snake-sim/game"
)

const scoreboardFile = "scoreboard.json"

// Scoreboard keeps every terminal outcome, newest last, and persists
// them as JSON under the data directory. Records from previous runs are
// loaded back so the file accumulates across sessions.
type Scoreboard struct {
	mu      sync.RWMutex
	dataDir string
	state   scoreboardState
}

type scoreboardState struct {
	SessionID string             `json:"sessionId"`
	Records   []game.ScoreRecord `json:"records"`
}

func NewScoreboard(dataDir string) *Scoreboard {
	sb := &Scoreboard{dataDir: dataDir}
	sb.load()
	sb.state.SessionID = uuid.New().String()
	return sb
}

// Record appends one game-over outcome. Implements game.Recorder.
func (sb *Scoreboard) Record(rec game.ScoreRecord) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.state.Records = append(sb.state.Records, rec)
}

// Records returns a copy of the history, oldest first.
func (sb *Scoreboard) Records() []game.ScoreRecord {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	out := make([]game.ScoreRecord, len(sb.state.Records))
	copy(out, sb.state.Records)
	return out
}

// Save writes the scoreboard to disk.
func (sb *Scoreboard) Save() error {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	if err := os.MkdirAll(sb.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(sb.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scoreboard: %w", err)
	}

	if err := os.WriteFile(filepath.Join(sb.dataDir, scoreboardFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write scoreboard file: %w", err)
	}

	return nil
}

// load pulls previous records in; a missing or unreadable file starts
// the board empty.
func (sb *Scoreboard) load() {
	data, err := os.ReadFile(filepath.Join(sb.dataDir, scoreboardFile))
	if err != nil {
		return
	}
	var state scoreboardState
	if err := json.Unmarshal(data, &state); err != nil {
		return
	}
	sb.state.Records = state.Records
}
