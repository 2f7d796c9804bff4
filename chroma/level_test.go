package chroma

import "testing"

func TestEstimateLevelClampsToOne(t *testing.T) {
	frame := make([]float64, 1024)
	frame[200] = 1.0

	level, raw := EstimateLevel(frame, 5.0, 4)
	if level != 1.0 {
		t.Fatalf("expected level=1.0, got %f", level)
	}

	if raw != 5.0 {
		t.Fatalf("expected raw=5.0, got %f", raw)
	}
}

func TestEstimateLevelBelowCeiling(t *testing.T) {
	frame := make([]float64, 64)
	frame[10] = 0.1

	level, raw := EstimateLevel(frame, 5.0, 4)
	if !almostEqual(level, 0.5, tolerance) {
		t.Fatalf("expected level=0.5, got %f", level)
	}

	if !almostEqual(raw, 0.5, tolerance) {
		t.Fatalf("expected raw=0.5, got %f", raw)
	}
}

func TestEstimateLevelEmptyRetainedSlice(t *testing.T) {
	frame := []float64{1, 1, 1}

	level, raw := EstimateLevel(frame, 5.0, 4)
	if level != 0 || raw != 0 {
		t.Fatalf("expected silence result (0, 0), got (%f, %f)", level, raw)
	}

	level, raw = EstimateLevel(nil, 5.0, 4)
	if level != 0 || raw != 0 {
		t.Fatalf("expected silence result for nil frame, got (%f, %f)", level, raw)
	}
}

func TestEstimateLevelSkipsLeadingBins(t *testing.T) {
	frame := make([]float64, 64)
	frame[2] = 10.0 // DC artifact region

	level, raw := EstimateLevel(frame, 5.0, 4)
	if level != 0 || raw != 0 {
		t.Fatalf("expected skipped bins to be ignored, got (%f, %f)", level, raw)
	}
}

func TestEstimateLevelAlwaysInRange(t *testing.T) {
	frames := [][]float64{
		nil,
		make([]float64, 8),
		{0, 0, 0, 0, 1000},
		{0, 0, 0, 0, 0.001},
	}

	for _, sens := range []float64{0.1, 1, 5, 20} {
		for _, frame := range frames {
			level, _ := EstimateLevel(frame, sens, 4)
			if level < 0 || level > 1 {
				t.Fatalf("level out of [0,1]: %f (sens=%f, frame=%v)", level, sens, frame)
			}
		}
	}
}
