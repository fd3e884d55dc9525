package planar

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/akmonengine/planar/gjk"
	"golang.org/x/sync/errgroup"
)

// Overlap is the narrow-phase result for a pair whose search did not end Separated
type Overlap struct {
	BodyA   *Body
	BodyB   *Body
	Outcome gjk.Outcome
	// Final simplex of the search, useful to draw or debug the verdict
	Simplex gjk.Simplex
}

// BroadPhase inserts every body in the spatial grid and streams the pairs
// whose AABBs overlap. Static-static pairs are skipped.
func BroadPhase(spatialGrid *SpatialGrid, bodies []*Body, workersCount int) <-chan Pair {
	spatialGrid.Clear()
	for i, body := range bodies {
		spatialGrid.Insert(i, body)
	}
	spatialGrid.SortCells()

	return spatialGrid.FindPairsParallel(bodies, workersCount)
}

// NarrowPhase runs GJK on every pair with workersCount goroutines.
// It returns the Overlapping and Inconclusive results, sorted by body ids.
// The first invalid shape, or the cancellation of ctx, stops the workers.
func NarrowPhase(ctx context.Context, pairs <-chan Pair, workersCount int, maxIterations int) ([]Overlap, error) {
	workersCount = max(1, workersCount)
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	overlaps := make([]Overlap, 0)

	for w := 0; w < workersCount; w++ {
		g.Go(func() error {
			var solver gjk.Solver

			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				var p Pair
				var ok bool
				select {
				case <-ctx.Done():
					return ctx.Err()
				case p, ok = <-pairs:
					if !ok {
						return nil
					}
				}

				if err := solver.Reset(p.BodyA.Shape, p.BodyB.Shape, maxIterations); err != nil {
					return fmt.Errorf("pair %s/%s: %w", p.BodyA.Id, p.BodyB.Id, err)
				}

				outcome := solver.Run()
				if outcome == gjk.Separated {
					continue
				}

				mu.Lock()
				overlaps = append(overlaps, Overlap{
					BodyA:   p.BodyA,
					BodyB:   p.BodyB,
					Outcome: outcome,
					Simplex: solver.Simplex(),
				})
				mu.Unlock()
			}
		})
	}

	err := g.Wait()
	// Unblock the broad-phase producers if the workers stopped early
	for range pairs {
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(overlaps, func(i, j int) bool {
		if overlaps[i].BodyA.Id != overlaps[j].BodyA.Id {
			return overlaps[i].BodyA.Id < overlaps[j].BodyA.Id
		}
		return overlaps[i].BodyB.Id < overlaps[j].BodyB.Id
	})

	return overlaps, nil
}
