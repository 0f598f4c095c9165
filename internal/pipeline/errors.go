package pipeline

import "fmt"

// Stage identifies where a run failed. Per-feed fetch errors never surface
// here; they are absorbed inside the fetcher with partial results.
type Stage string

const (
	StageConfig    Stage = "config"
	StageSummarize Stage = "summarize"
	StageNotify    Stage = "notify"
)

// StageError classifies a fatal run failure by pipeline stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
