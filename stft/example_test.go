package stft_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-chroma/stft"
)

func ExampleAnalyzer() {
	const (
		sampleRate = 44100.0
		fftSize    = 2048
	)

	// Tone aligned exactly with bin 20, so the rectangular window is leak-free.
	freq := 20 * sampleRate / fftSize

	a, err := stft.NewAnalyzer(func(mag []float64) {
		peak := 0
		for k, v := range mag {
			if v > mag[peak] {
				peak = k
			}
		}

		fmt.Printf("peak bin %d magnitude %.2f\n", peak, mag[peak])
	},
		stft.WithSampleRate(sampleRate),
		stft.WithFFTSize(fftSize),
		stft.WithWindow(stft.WindowRectangular),
	)
	if err != nil {
		panic(err)
	}

	sig := make([]float64, fftSize)
	step := 2 * math.Pi * freq / sampleRate

	for i := range sig {
		sig[i] = math.Sin(step * float64(i))
	}

	a.ProcessBlock(sig)

	// Output:
	// peak bin 20 magnitude 1.00
}
