package chroma

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Vector is a pitch-class energy distribution, indexed 0 = C through 11 = B.
// Every element is in [0,1].
type Vector [NumClasses]float64

// Reducer folds magnitude frames into a temporally smoothed pitch-class
// vector.
//
// The reducer is stateful: each call to Update either computes a fresh vector
// or decays the previous one, and the result becomes the state for the next
// call. Frames must therefore be presented in arrival order. A Reducer is not
// safe for concurrent use; [Pipeline] adds the published-snapshot layer for
// cross-goroutine readers.
type Reducer struct {
	cfg Config

	prev Vector

	// bin→class table, rebuilt when the frame length changes
	mapping    []int
	mappingLen int

	accum [NumClasses]float64
}

// NewReducer creates a reducer with the given options.
//
// The configured sample rate must be positive; a non-positive rate is a
// contract violation, not a degenerate input.
func NewReducer(opts ...Option) (*Reducer, error) {
	cfg := ApplyOptions(opts...)
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("chroma: sample rate must be > 0: %v", cfg.SampleRate)
	}

	return newReducer(cfg), nil
}

func newReducer(cfg Config) *Reducer {
	return &Reducer{cfg: cfg}
}

// Config returns the reducer configuration.
func (r *Reducer) Config() Config {
	return r.cfg
}

// Current returns the vector emitted by the last Update.
func (r *Reducer) Current() Vector {
	return r.prev
}

// Reset clears the smoothing state to all-zero, as on session stop, so a
// later restart does not observe stale pitch content.
func (r *Reducer) Reset() {
	r.prev = Vector{}
}

// Update folds one magnitude frame into the pitch-class state and returns
// the new vector.
//
// rawLevel is the pre-clamp amplified value from [EstimateLevel]; the
// activity gate compares it, not the clamped level. At or below the
// threshold the previous vector decays by DecayFactor and the frame content
// is never read. On the active path spectral energy inside the configured
// band accumulates per pitch class, the accumulator is normalized by its
// maximum, and sensitivity is re-applied as a secondary gain with every
// element clamped to 1. A frame with no retained energy yields the zero
// vector.
func (r *Reducer) Update(frame []float64, rawLevel, sensitivity float64) Vector {
	if rawLevel <= r.cfg.ActivityThreshold {
		var next Vector

		vecmath.ScaleBlock(next[:], r.prev[:], r.cfg.DecayFactor)
		r.prev = next

		return next
	}

	if r.mapping == nil || r.mappingLen != len(frame) {
		r.mapping = buildMapping(len(frame), r.cfg.SampleRate, r.cfg.LowCutBin, r.cfg.HighCutBin)
		r.mappingLen = len(frame)
	}

	for k := range r.accum {
		r.accum[k] = 0
	}

	for i, class := range r.mapping {
		if class < 0 {
			continue
		}

		r.accum[class] += frame[i]
	}

	maxAccum := 0.0
	for _, v := range r.accum {
		if v > maxAccum {
			maxAccum = v
		}
	}

	var next Vector

	if maxAccum > 0 {
		for k, v := range r.accum {
			g := v / maxAccum * sensitivity
			if g > 1 {
				g = 1
			}

			next[k] = g
		}
	}

	r.prev = next

	return next
}
