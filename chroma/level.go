package chroma

// EstimateLevel returns the level of a magnitude frame clamped to [0,1],
// together with the raw amplified peak before clamping.
//
// The first skipBins bins are excluded from the peak scan. The raw value
// feeds the activity gate in [Reducer.Update]: a clamped 1.0 must stay
// distinguishable from "barely above threshold" when deciding between fresh
// computation and decay. An empty retained slice is the silence result (0, 0).
func EstimateLevel(frame []float64, sensitivity float64, skipBins int) (level, raw float64) {
	if skipBins < 0 {
		skipBins = 0
	}

	if skipBins >= len(frame) {
		return 0, 0
	}

	peak := 0.0
	for _, v := range frame[skipBins:] {
		if v > peak {
			peak = v
		}
	}

	raw = peak * sensitivity

	level = raw
	if level > 1 {
		level = 1
	}

	return level, raw
}
