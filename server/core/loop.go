package core

import (
	"context"
	"sync"
	"time"
)

// GameLoop steps a match at a fixed tick rate until it ends, is stopped,
// or its context is cancelled.
type GameLoop struct {
	match    *Match
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(match *Match, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		match:    match,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	dt := 1 / float64(g.tickRate)
	g.match.logger.Info("game loop started", "tickrate", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			g.match.logger.Info("game loop stopped", "reason", ctx.Err())
			return
		case <-g.stopChan:
			g.match.logger.Info("game loop stopped")
			return
		case <-ticker.C:
			if !g.match.Step(dt) {
				g.match.logger.Info("game loop stopped", "reason", "match over")
				return
			}
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
