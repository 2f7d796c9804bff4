// Package stft converts a stream of time-domain samples into one-sided
// magnitude frames suitable for the chroma package.
//
// The analyzer keeps a ring of the most recent FFTSize samples, applies a
// periodic analysis window, runs a forward FFT, and emits the magnitudes of
// bins 0 through Nyquist-1 (FFTSize/2 values) once per hop. The frequency
// of bin i is i * sampleRate / FFTSize.
package stft
