package chroma

import "math"

// NumClasses is the number of pitch classes in the equal-tempered octave.
const NumClasses = 12

// A4 = 440 Hz = MIDI note 69.
const (
	referenceFreq = 440.0
	referenceNote = 69
)

// Names lists the pitch-class names in chromatic order, index 0 = C.
var Names = [NumClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// BinResolution returns the width in Hz of one spectral bin for a one-sided
// magnitude frame of binCount bins spanning 0 Hz to Nyquist.
func BinResolution(sampleRate float64, binCount int) float64 {
	return sampleRate / float64(2*binCount)
}

// MIDINote converts a frequency in Hz to a fractional MIDI note number.
// The frequency must be positive.
func MIDINote(freq float64) float64 {
	return referenceNote + NumClasses*math.Log2(freq/referenceFreq)
}

// PitchClass folds a positive frequency onto its equal-tempered pitch class
// in [0,11]. Frequencies below the MIDI origin still fold correctly: the
// modulo is normalized, never truncated toward zero.
func PitchClass(freq float64) int {
	n := int(math.Round(MIDINote(freq))) % NumClasses
	if n < 0 {
		n += NumClasses
	}

	return n
}

// buildMapping precomputes the bin index → pitch class table for a frame of
// binCount bins. Bins outside [lowCut, highCut] and bins with non-positive
// frequency map to -1 and never contribute.
func buildMapping(binCount int, sampleRate float64, lowCut, highCut int) []int {
	mapping := make([]int, binCount)
	res := BinResolution(sampleRate, binCount)

	for i := range mapping {
		mapping[i] = -1

		if i < lowCut || i > highCut {
			continue
		}

		freq := float64(i) * res
		if freq <= 0 {
			continue
		}

		mapping[i] = PitchClass(freq)
	}

	return mapping
}
