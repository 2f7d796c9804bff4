package chroma

import (
	"sync"
	"testing"
)

func mustPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()

	p, err := NewPipeline(opts...)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	return p
}

func TestPipelineProcessPublishes(t *testing.T) {
	p := mustPipeline(t)

	if p.Latest() != (Snapshot{}) {
		t.Fatalf("expected zero snapshot before first frame, got %+v", p.Latest())
	}

	snap := p.Process(singleBinFrame(20, 1.0))
	if snap.Level != 1.0 {
		t.Fatalf("expected level 1.0, got %f", snap.Level)
	}

	if snap.Chroma[9] != 1.0 {
		t.Fatalf("expected class A at 1.0, got %v", snap.Chroma)
	}

	if p.Latest() != snap {
		t.Fatalf("expected Latest to match returned snapshot: %+v != %+v", p.Latest(), snap)
	}
}

func TestPipelineSensitivityAdjustment(t *testing.T) {
	p := mustPipeline(t)

	if p.Sensitivity() != 5.0 {
		t.Fatalf("expected default sensitivity 5.0, got %f", p.Sensitivity())
	}

	p.SetSensitivity(10)

	if p.Sensitivity() != 10 {
		t.Fatalf("expected sensitivity 10, got %f", p.Sensitivity())
	}

	p.SetSensitivity(0)
	p.SetSensitivity(-3)

	if p.Sensitivity() != 10 {
		t.Fatalf("expected non-positive values ignored, got %f", p.Sensitivity())
	}
}

func TestPipelineSensitivityAffectsNextFrame(t *testing.T) {
	p := mustPipeline(t, WithSensitivity(1))

	snap := p.Process(singleBinFrame(20, 0.4))
	if !almostEqual(snap.Level, 0.4, tolerance) {
		t.Fatalf("expected level 0.4 at unit gain, got %f", snap.Level)
	}

	p.SetSensitivity(2)

	snap = p.Process(singleBinFrame(20, 0.4))
	if !almostEqual(snap.Level, 0.8, tolerance) {
		t.Fatalf("expected level 0.8 after gain change, got %f", snap.Level)
	}
}

func TestPipelineReset(t *testing.T) {
	p := mustPipeline(t)

	p.Process(singleBinFrame(20, 1.0))
	p.Reset()

	if p.Latest() != (Snapshot{}) {
		t.Fatalf("expected zero snapshot after reset, got %+v", p.Latest())
	}

	// First silent frame after reset stays at zero rather than decaying
	// stale state.
	snap := p.Process(make([]float64, 1024))
	if snap.Chroma != (Vector{}) {
		t.Fatalf("expected zero chroma after reset, got %v", snap.Chroma)
	}
}

func TestPipelineConcurrentReaders(t *testing.T) {
	p := mustPipeline(t)

	frame := singleBinFrame(20, 1.0)
	silence := make([]float64, 1024)

	var wg sync.WaitGroup

	done := make(chan struct{})

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
				}

				snap := p.Latest()
				for k, v := range snap.Chroma {
					if v < 0 || v > 1 {
						t.Errorf("torn snapshot: class %d = %f", k, v)
						return
					}
				}
			}
		}()
	}

	for i := range 2000 {
		if i%2 == 0 {
			p.Process(frame)
		} else {
			p.Process(silence)
		}

		if i%100 == 0 {
			p.SetSensitivity(1 + float64(i%19))
		}
	}

	close(done)
	wg.Wait()
}
