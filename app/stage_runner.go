package app

import (
	"context"
	"fmt"
	"time"

	"claimstats/internal"
)

// Stage is one named step of the report pipeline
type Stage struct {
	Name string
	Run  func(ctx context.Context) error
}

// StageTiming records how long a stage took
type StageTiming struct {
	Name       string `json:"name"`
	DurationMs int64  `json:"duration_ms"`
}

// StageRunner executes stages in order and stops at the first failure
type StageRunner struct {
	logger *internal.Logger
}

// NewStageRunner creates a new stage runner
func NewStageRunner(logger *internal.Logger) *StageRunner {
	return &StageRunner{logger: logger}
}

// Execute runs every stage sequentially. Artifacts written by stages that
// completed before a failure are left in place.
func (r *StageRunner) Execute(ctx context.Context, stages []Stage) ([]StageTiming, error) {
	timings := make([]StageTiming, 0, len(stages))
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return timings, err
		}

		start := time.Now()
		r.logger.Info("Stage %s started", stage.Name)
		if err := stage.Run(ctx); err != nil {
			r.logger.Error("Stage %s failed: %v", stage.Name, err)
			return timings, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		elapsed := time.Since(start)
		timings = append(timings, StageTiming{Name: stage.Name, DurationMs: elapsed.Milliseconds()})
		r.logger.Info("Stage %s completed in %.2fms", stage.Name, float64(elapsed.Nanoseconds())/1e6)
	}
	return timings, nil
}
