// Package platform runs games against abstract input and display
// endpoints. The terminal front end lives in the tui subpackage; Loop is
// the headless core used by anything that can push frames, including a
// hardware panel driver.
package platform

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ledcade/ledcade/internal/core"
	"github.com/ledcade/ledcade/internal/registry"
)

// DisplaySink receives one completed frame per tick. A Push error means the
// frame was dropped; the simulation is unaffected.
type DisplaySink interface {
	Push(*core.Frame) error
}

// InputSource drains all intents queued since the previous tick, merged
// into a single frame.
type InputSource interface {
	Drain() core.InputFrame
}

// Loop drives a game at a fixed tick rate: drain input, step, render,
// push. It owns the frame buffer and runs on a single goroutine.
type Loop struct {
	Game   registry.Game
	Sink   DisplaySink
	Source InputSource
	Config core.RuntimeConfig
	Logger *log.Logger
}

// Run executes the loop until a quit intent arrives or the context is
// cancelled. A quit tick still completes its step, render, and push, so
// the last simulated state reaches the display. Returns an error only for
// an invalid configuration.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Config.Validate(); err != nil {
		return err
	}
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}

	tickRate := l.Config.TickRate
	l.Game.Reset(l.Config)

	frame := core.NewFrame(l.Config.ArenaW, l.Config.ArenaH)
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	logger.Info("loop started", "game", l.Game.ID(), "tick_rate", tickRate,
		"arena", l.Config.ArenaW*l.Config.ArenaH)

	for {
		select {
		case <-ctx.Done():
			logger.Info("loop cancelled", "game", l.Game.ID())
			return nil
		case <-ticker.C:
		}

		in := l.Source.Drain()
		quit := in.Has(core.ActionQuit)

		l.Game.Step(in)

		frame.Clear()
		l.Game.Render(frame)
		if err := l.Sink.Push(frame); err != nil {
			// Transient sink failure: the frame is lost, the game is not
			logger.Debug("frame dropped", "game", l.Game.ID(), "err", err)
		}

		if quit {
			logger.Info("loop stopped", "game", l.Game.ID(),
				"score", l.Game.State().Score)
			return nil
		}
	}
}
