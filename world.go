package planar

import (
	"context"

	"github.com/akmonengine/planar/gjk"
	"go.uber.org/zap"
)

const DEFAULT_WORKERS = 1

type World struct {
	// List of all bodies in the world
	Bodies      []*Body
	SpatialGrid *SpatialGrid
	Workers     int
	// Bound on GJK iterations per pair, gjk.MaxIterations when not positive
	MaxIterations int
	// Nil means no logging
	Logger *zap.Logger

	Events Events
}

func NewWorld(logger *zap.Logger) *World {
	return &World{
		SpatialGrid:   NewSpatialGrid(DEFAULT_CELL_SIZE, DEFAULT_CELLS),
		Workers:       DEFAULT_WORKERS,
		MaxIterations: gjk.MaxIterations,
		Logger:        logger,
		Events:        NewEvents(),
	}
}

// AddBody adds a body to the world
func (w *World) AddBody(body *Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world
func (w *World) RemoveBody(body *Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	w.Events.forget(body)
}

// FindBody returns the body with the given id, or nil
func (w *World) FindBody(id string) *Body {
	for _, b := range w.Bodies {
		if b.Id == id {
			return b
		}
	}
	return nil
}

// Detect runs the broad and narrow phases over every body, then sends the frame events.
// The returned overlaps hold Overlapping and Inconclusive pairs.
func (w *World) Detect(ctx context.Context) ([]Overlap, error) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	if w.SpatialGrid == nil {
		w.SpatialGrid = NewSpatialGrid(DEFAULT_CELL_SIZE, DEFAULT_CELLS)
	}
	logger := w.logger()

	w.computeAABBs()

	overlaps, err := NarrowPhase(ctx, BroadPhase(w.SpatialGrid, w.Bodies, w.Workers), w.Workers, w.MaxIterations)
	if err != nil {
		return nil, err
	}

	inconclusive := 0
	for _, o := range overlaps {
		if o.Outcome == gjk.Inconclusive {
			inconclusive++
			logger.Warn("overlap test inconclusive",
				zap.String("bodyA", o.BodyA.Id),
				zap.String("bodyB", o.BodyB.Id),
				zap.Int("maxIterations", w.MaxIterations),
			)
		}
	}
	logger.Debug("detect",
		zap.Int("bodies", len(w.Bodies)),
		zap.Int("overlaps", len(overlaps)-inconclusive),
		zap.Int("inconclusive", inconclusive),
	)

	w.Events.recordOverlaps(overlaps)
	w.Events.flush()

	return overlaps, nil
}

func (w *World) computeAABBs() {
	task(w.Workers, w.Bodies, func(body *Body) {
		body.ComputeAABB()
	})
}

func (w *World) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}
