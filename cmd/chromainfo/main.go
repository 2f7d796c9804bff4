// Command chromainfo prints the bin-to-pitch-class mapping for a given
// analysis framing.
//
// Usage:
//
//	chromainfo [flags]
//
// Examples:
//
//	chromainfo
//	chromainfo -rate 48000 -fft 4096
//	chromainfo -low 10 -high 40
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-chroma/chroma"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	fftSize := flag.Int("fft", 2048, "FFT size in samples (bin count is half)")
	low := flag.Int("low", 10, "first bin of the retained band")
	high := flag.Int("high", 500, "last bin of the retained band")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chromainfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints frequency, MIDI note, and pitch class for each spectral bin\n")
		fmt.Fprintf(os.Stderr, "in the retained band of the given analysis framing.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  chromainfo -rate 48000 -fft 4096\n")
		fmt.Fprintf(os.Stderr, "  chromainfo -low 10 -high 40\n")
	}
	flag.Parse()

	if *rate <= 0 {
		fmt.Fprintf(os.Stderr, "error: sample rate must be > 0\n")
		os.Exit(1)
	}
	if *fftSize < 2 {
		fmt.Fprintf(os.Stderr, "error: fft size must be >= 2\n")
		os.Exit(1)
	}

	bins := *fftSize / 2
	res := chroma.BinResolution(*rate, bins)

	fmt.Printf("sample rate %.0f Hz, %d bins, %.4f Hz/bin\n\n", *rate, bins, res)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFreq [Hz]\tMIDI\tClass\n")
	fmt.Fprintf(tw, "---\t---------\t----\t-----\n")

	for i := *low; i <= *high && i < bins; i++ {
		freq := float64(i) * res
		if freq <= 0 {
			fmt.Fprintf(tw, "%d\t%.2f\t-\t-\n", i, freq)
			continue
		}

		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%s\n",
			i,
			freq,
			chroma.MIDINote(freq),
			chroma.Names[chroma.PitchClass(freq)],
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
