package graph

import (
	"context"
	"fmt"
	"sync"

	"github.com/meshwerk/ifcgraph/pkg/logger"
	"github.com/meshwerk/ifcgraph/pkg/model"

	"golang.org/x/sync/errgroup"
)

const progressEvery = 5000

// BuildFullGraph extracts every entity of the source into g, in ascending
// identifier order. The first extraction error aborts the walk.
func BuildFullGraph(ctx context.Context, src model.Source, g *Graph, opts Options) error {
	ids := src.EntityIDs()
	logger.Info("building graph", "entities", len(ids))

	x := NewExtractor(src, opts)
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		e, err := src.ByID(id)
		if err != nil {
			return fmt.Errorf("failed to load entity #%d: %w", id, err)
		}
		logger.Debug("extracting entity", "id", id, "type", e.Type())
		if err := x.Extract(e, g); err != nil {
			return err
		}
		if (i+1)%progressEvery == 0 {
			logger.Info("graph build progress", "processed", i+1, "total", len(ids))
		}
	}

	logger.Info("graph built", "nodes", g.NodeCount(), "relationships", g.RelationshipCount())
	return nil
}

// BuildFullGraphParallel is BuildFullGraph with extraction fanned out over
// a bounded worker group. Each worker extracts into a private scratch graph
// and merges it into g under a lock, so g sees the same first-write-wins
// dedup as the sequential walk; only insertion order differs.
func BuildFullGraphParallel(ctx context.Context, src model.Source, g *Graph, opts Options, workers int) error {
	if workers < 1 {
		workers = 1
	}
	ids := src.EntityIDs()
	logger.Info("building graph", "entities", len(ids), "workers", workers)

	x := NewExtractor(src, opts)
	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, id := range ids {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			e, err := src.ByID(id)
			if err != nil {
				return fmt.Errorf("failed to load entity #%d: %w", id, err)
			}
			scratch := NewGraph()
			if err := x.Extract(e, scratch); err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			g.Merge(scratch)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	logger.Info("graph built", "nodes", g.NodeCount(), "relationships", g.RelationshipCount())
	return nil
}
