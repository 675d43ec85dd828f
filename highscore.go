package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
)

const highScoreFile = "highscore.bin"

// FileHighScores keeps the best score as a single little-endian uint32
// on disk. Implements game.HighScoreStore.
type FileHighScores struct {
	path string
}

func NewFileHighScores(dataDir string) *FileHighScores {
	return &FileHighScores{path: filepath.Join(dataDir, highScoreFile)}
}

// Load returns the stored best score, or 0 when nothing usable is on
// disk.
func (f *FileHighScores) Load() int {
	data, err := os.ReadFile(f.path)
	if err != nil || len(data) < 4 {
		return 0
	}
	return int(binary.LittleEndian.Uint32(data))
}

func (f *FileHighScores) Store(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(score))
	return os.WriteFile(f.path, data, 0644)
}
