package planning

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SourceReader reads the full configured source range as a grid of cell
// values.
type SourceReader interface {
	Read(ctx context.Context) (Grid, error)
}

// TargetWriter replaces the target range with the supplied grid. 'week' is the
// ISO week number of the run, for targets that name their worksheet after the
// week.
type TargetWriter interface {
	Write(ctx context.Context, week int, grid Grid) error
}

// Generator is the planning pipeline: read the source range, select the block
// of columns for the current week, optionally remap cell values and reshape to
// a person/project overview, and replace the target range with the result.
//
// A run makes exactly one read against the source and one write against the
// target, and is idempotent for a fixed run date and unchanged source data.
type Generator struct {
	Selector Selector
	Mapper   *Mapper   // optional cell value mapping
	Overview *Overview // optional overview reshaping
	Log      zerolog.Logger
}

// Result summarises a completed run.
type Result struct {
	Week    int
	Offset  int
	Rows    int
	Columns int
}

// Run executes the pipeline for the given run date. The target is left
// untouched unless the selection and transformation complete without error.
func (g *Generator) Run(ctx context.Context, today time.Time, source SourceReader, target TargetWriter) (*Result, error) {
	grid, err := source.Read(ctx)
	if err != nil {
		return nil, err
	}

	if grid.IsEmpty() {
		return nil, &SourceUnavailableError{Err: errEmptyGrid}
	}

	g.Log.Debug().Int("rows", grid.Rows()).Int("columns", grid.Columns()).Msg("retrieved source range")

	block, err := g.Selector.Select(today, grid)
	if err != nil {
		return nil, err
	}

	g.Log.Info().Int("week", block.Week).Int("offset", block.Offset).Int("column", block.Start).Msg("selected week block")

	var selected Grid
	if g.Overview != nil {
		overview, skipped, err := g.Overview.Build(grid, block.Start)
		if err != nil {
			return nil, err
		}

		for _, s := range skipped {
			g.Log.Warn().Int("row", s.Row+1).Str("project", s.Project).Str("hours", s.Hours).Msg("ignoring row with invalid hours value")
		}

		selected = overview
	} else {
		selected = grid.Block(block.Start, block.Width)
	}

	if g.Mapper != nil {
		if selected, err = g.Mapper.Apply(selected); err != nil {
			return nil, err
		}
	}

	if err := target.Write(ctx, block.Week, selected); err != nil {
		return nil, err
	}

	return &Result{
		Week:    block.Week,
		Offset:  block.Offset,
		Rows:    selected.Rows(),
		Columns: selected.Columns(),
	}, nil
}
