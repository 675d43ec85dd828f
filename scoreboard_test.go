package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-sim/game"
)

func TestScoreboardAppendAndCopy(t *testing.T) {
	sb := NewScoreboard(t.TempDir())

	sb.Record(game.ScoreRecord{Name: "alice", Score: 30})
	sb.Record(game.ScoreRecord{Name: "bob", Score: 10})

	records := sb.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "alice", records[0].Name)
	assert.Equal(t, "bob", records[1].Name)

	// The returned slice is a copy.
	records[0].Name = "mallory"
	assert.Equal(t, "alice", sb.Records()[0].Name)
}

func TestScoreboardRoundTrip(t *testing.T) {
	dir := t.TempDir()

	sb := NewScoreboard(dir)
	sb.Record(game.ScoreRecord{Name: "alice", Score: 70})
	require.NoError(t, sb.Save())
	assert.FileExists(t, filepath.Join(dir, scoreboardFile))

	// A new board in the same directory carries the history forward.
	sb2 := NewScoreboard(dir)
	records := sb2.Records()
	require.Len(t, records, 1)
	assert.Equal(t, game.ScoreRecord{Name: "alice", Score: 70}, records[0])
}

func TestScoreboardStartsEmptyWithoutFile(t *testing.T) {
	sb := NewScoreboard(t.TempDir())
	assert.Empty(t, sb.Records())
}

func TestScoreboardIgnoresCorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, scoreboardFile), "{not json")

	sb := NewScoreboard(dir)
	assert.Empty(t, sb.Records())
}
