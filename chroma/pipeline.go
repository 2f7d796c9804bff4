package chroma

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Snapshot is one published pipeline result. Snapshots are immutable once
// published; readers always observe a complete frame, never a partial update.
type Snapshot struct {
	Level  float64
	Chroma Vector
}

// Pipeline runs the per-frame reduction: level estimate, activity gate,
// pitch-class fold.
//
// Exactly one goroutine feeds Process, in frame-arrival order — out-of-order
// frames would corrupt the decay smoothing. Any number of goroutines may read
// Latest or adjust the sensitivity concurrently; each result is computed into
// a local value and published with a single atomic replace.
type Pipeline struct {
	cfg     Config
	reducer *Reducer

	sensitivity atomic.Uint64 // float64 bits
	latest      atomic.Pointer[Snapshot]
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	cfg := ApplyOptions(opts...)
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("chroma: sample rate must be > 0: %v", cfg.SampleRate)
	}

	p := &Pipeline{
		cfg:     cfg,
		reducer: newReducer(cfg),
	}
	p.sensitivity.Store(math.Float64bits(cfg.Sensitivity))
	p.latest.Store(&Snapshot{})

	return p, nil
}

// Config returns the pipeline configuration. Sensitivity reflects the value
// at construction; use [Pipeline.Sensitivity] for the live value.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Sensitivity returns the current sensitivity gain.
func (p *Pipeline) Sensitivity() float64 {
	return math.Float64frombits(p.sensitivity.Load())
}

// SetSensitivity adjusts the sensitivity gain. Non-positive values are
// ignored. Safe to call from any goroutine; the next frame picks it up.
func (p *Pipeline) SetSensitivity(sensitivity float64) {
	if sensitivity <= 0 {
		return
	}

	p.sensitivity.Store(math.Float64bits(sensitivity))
}

// Process reduces one magnitude frame, publishes the result, and returns it.
func (p *Pipeline) Process(frame []float64) Snapshot {
	sens := p.Sensitivity()

	level, raw := EstimateLevel(frame, sens, p.cfg.SkipBins)

	snap := Snapshot{
		Level:  level,
		Chroma: p.reducer.Update(frame, raw, sens),
	}
	p.latest.Store(&snap)

	return snap
}

// Latest returns the most recently published snapshot.
func (p *Pipeline) Latest() Snapshot {
	return *p.latest.Load()
}

// Reset clears the smoothing state and publishes an all-zero snapshot.
func (p *Pipeline) Reset() {
	p.reducer.Reset()
	p.latest.Store(&Snapshot{})
}
