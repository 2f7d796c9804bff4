package stft

import "math"

// WindowType identifies an analysis window function.
type WindowType int

const (
	WindowRectangular WindowType = iota
	WindowHann
	WindowHamming
	WindowBlackman
)

// String returns the window name.
func (t WindowType) String() string {
	switch t {
	case WindowRectangular:
		return "rectangular"
	case WindowHann:
		return "hann"
	case WindowHamming:
		return "hamming"
	case WindowBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

// windowCoeffs generates the periodic form of the window, suited for FFT
// framing rather than symmetric filter design.
func windowCoeffs(t WindowType, n int) []float64 {
	coeffs := make([]float64, n)
	if n == 0 {
		return coeffs
	}

	step := 2 * math.Pi / float64(n)

	for i := range coeffs {
		phase := step * float64(i)

		switch t {
		case WindowHann:
			coeffs[i] = 0.5 - 0.5*math.Cos(phase)
		case WindowHamming:
			coeffs[i] = 0.54 - 0.46*math.Cos(phase)
		case WindowBlackman:
			coeffs[i] = 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
		default:
			coeffs[i] = 1
		}
	}

	return coeffs
}
