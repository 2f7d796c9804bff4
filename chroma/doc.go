// Package chroma reduces magnitude spectra to 12-bin pitch-class energy
// vectors for real-time pitch and score-position tracking front ends.
//
// The package operates on one-sided magnitude frames produced by an external
// transform (see the stft package) and performs no FFT itself. Each frame
// passes through two stages: a peak level estimate with a configurable
// sensitivity gain, and an activity-gated fold of spectral energy onto the
// equal-tempered pitch classes. Below the activity threshold the previous
// vector decays toward silence instead of being recomputed, which smooths
// note releases and brief gaps.
package chroma
