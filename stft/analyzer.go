package stft

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// FrameFunc receives one magnitude frame. The slice is reused between
// emissions; callers that retain a frame must copy it.
type FrameFunc func(mag []float64)

// Analyzer is a streaming short-time magnitude analyzer.
//
// Samples are pushed through ProcessSample or ProcessBlock; once the ring has
// filled, a window+FFT+magnitude pass runs every hop and the frame callback
// fires. Magnitudes are amplitude-calibrated: a full-scale sine aligned with
// a bin yields approximately 1.0 there after window-gain compensation.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	cfg     Config
	hop     int
	bins    int
	winGain float64

	win  []float64
	plan *algofft.Plan[complex128]

	ring   []float64
	write  int
	filled int
	toHop  int

	input  []complex128
	output []complex128
	re     []float64
	im     []float64
	mag    []float64

	onFrame FrameFunc
}

// NewAnalyzer creates an analyzer that calls onFrame once per hop.
func NewAnalyzer(onFrame FrameFunc, opts ...Option) (*Analyzer, error) {
	cfg := ApplyOptions(opts...)

	if onFrame == nil {
		return nil, fmt.Errorf("stft: frame callback must not be nil")
	}

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("stft: sample rate must be > 0: %v", cfg.SampleRate)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("stft: fft plan: %w", err)
	}

	hop := int(math.Round(float64(cfg.FFTSize) * (1 - cfg.Overlap)))
	if hop < 1 {
		hop = 1
	}

	win := windowCoeffs(cfg.Window, cfg.FFTSize)

	sum := 0.0
	for _, w := range win {
		sum += w
	}

	bins := cfg.FFTSize / 2

	return &Analyzer{
		cfg:     cfg,
		hop:     hop,
		bins:    bins,
		winGain: sum / float64(cfg.FFTSize),
		win:     win,
		plan:    plan,
		ring:    make([]float64, cfg.FFTSize),
		input:   make([]complex128, cfg.FFTSize),
		output:  make([]complex128, cfg.FFTSize),
		re:      make([]float64, bins),
		im:      make([]float64, bins),
		mag:     make([]float64, bins),
		onFrame: onFrame,
	}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Bins returns the number of magnitude bins per emitted frame (FFTSize/2).
func (a *Analyzer) Bins() int {
	return a.bins
}

// HopSize returns the number of samples between consecutive frames.
func (a *Analyzer) HopSize() int {
	return a.hop
}

// Reset discards buffered samples and restarts the fill/hop cycle.
func (a *Analyzer) Reset() {
	for i := range a.ring {
		a.ring[i] = 0
	}

	a.write = 0
	a.filled = 0
	a.toHop = 0
}

// ProcessSample pushes a single sample, emitting a frame when a hop completes.
func (a *Analyzer) ProcessSample(x float64) {
	a.ring[a.write] = x

	a.write++
	if a.write >= a.cfg.FFTSize {
		a.write = 0
	}

	if a.filled < a.cfg.FFTSize {
		a.filled++
	}

	a.toHop++
	if a.filled < a.cfg.FFTSize || a.toHop < a.hop {
		return
	}

	a.toHop = 0
	a.emitFrame()
}

// ProcessBlock pushes a block of samples.
func (a *Analyzer) ProcessBlock(block []float64) {
	for _, x := range block {
		a.ProcessSample(x)
	}
}

func (a *Analyzer) emitFrame() {
	const eps = 1e-12

	read := a.write
	for i := range a.input {
		a.input[i] = complex(a.ring[read]*a.win[i], 0)

		read++
		if read >= a.cfg.FFTSize {
			read = 0
		}
	}

	if err := a.plan.Forward(a.output, a.input); err != nil {
		return
	}

	for k := range a.bins {
		a.re[k] = real(a.output[k])
		a.im[k] = imag(a.output[k])
	}

	vecmath.Magnitude(a.mag, a.re, a.im)

	norm := float64(a.cfg.FFTSize) * math.Max(a.winGain, eps)
	for k := range a.mag {
		a.mag[k] /= norm
		if k > 0 {
			// One-sided spectrum: interior bins carry half the energy.
			a.mag[k] *= 2
		}
	}

	a.onFrame(a.mag)
}
