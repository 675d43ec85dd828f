package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"snake-sim/config"
	"snake-sim/game"
	"snake-sim/game/types"
	"snake-sim/ui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the yaml config file")
	seed := flag.Uint64("seed", 0, "Placement RNG seed (0 = time based)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	slog.Info("starting", "board_size", cfg.BoardSize, "step_interval", cfg.StepInterval)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	scoreboard := NewScoreboard(cfg.DataDir)
	highScores := NewFileHighScores(cfg.DataDir)

	g := game.NewGame(cfg.BoardSize, cfg.StepInterval, rand.NewSource(*seed))
	session := game.NewSession(g, scoreboard, highScores, nil)

	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	session.Start()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyP) {
			session.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			session.Reset()
		}
		if dir := readIntent(); dir != types.DirNone {
			session.SetIntent(dir)
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		session.Drive(float64(rl.GetFrameTime()))
		renderer.Draw(session.Snapshot(), scoreboard.Records())
	}

	if err := scoreboard.Save(); err != nil {
		slog.Warn("scoreboard save failed", "err", err)
	}
}
