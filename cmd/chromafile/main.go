// Command chromafile runs the chroma pipeline over a WAV file and prints one
// line per analysis frame: time, level, and the pitch-class distribution.
//
// Usage:
//
//	chromafile [flags] file.wav
//
// Examples:
//
//	chromafile recording.wav
//	chromafile -fft 4096 -sensitivity 8 recording.wav
//	chromafile -ref score.json recording.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gopxl/beep/wav"

	"github.com/cwbudde/algo-chroma/chroma"
	"github.com/cwbudde/algo-chroma/reference"
	"github.com/cwbudde/algo-chroma/stft"
)

const barWidth = 8

func main() {
	fftSize := flag.Int("fft", 2048, "FFT size in samples")
	overlap := flag.Float64("overlap", 0.5, "inter-frame overlap fraction [0,1)")
	sensitivity := flag.Float64("sensitivity", 5.0, "sensitivity gain (typical UX range 1-20)")
	refPath := flag.String("ref", "", "optional reference chroma sequence (JSON)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chromafile [flags] file.wav\n\n")
		fmt.Fprintf(os.Stderr, "Streams a WAV file through the chroma pipeline and prints one line\n")
		fmt.Fprintf(os.Stderr, "per analysis frame.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *refPath, *fftSize, *overlap, *sensitivity); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, refPath string, fftSize int, overlap, sensitivity float64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	sampleRate := float64(format.SampleRate)

	pipeline, err := chroma.NewPipeline(
		chroma.WithSampleRate(sampleRate),
		chroma.WithSensitivity(sensitivity),
	)
	if err != nil {
		return err
	}

	frame := 0

	analyzer, err := stft.NewAnalyzer(func(mag []float64) {
		snap := pipeline.Process(mag)
		printFrame(frame, sampleRate, fftSize, overlap, snap)
		frame++
	},
		stft.WithSampleRate(sampleRate),
		stft.WithFFTSize(fftSize),
		stft.WithOverlap(overlap),
	)
	if err != nil {
		return err
	}

	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for _, s := range buf[:n] {
			analyzer.ProcessSample((s[0] + s[1]) / 2)
		}

		if !ok {
			break
		}
	}

	if err := streamer.Err(); err != nil {
		return fmt.Errorf("stream %s: %w", path, err)
	}

	fmt.Printf("%d frames\n", frame)

	if refPath != "" {
		seq, err := reference.LoadFile(refPath)
		if err != nil {
			return err
		}

		fmt.Printf("reference: %d frames, shape compatible\n", len(seq))
	}

	return nil
}

func printFrame(frame int, sampleRate float64, fftSize int, overlap float64, snap chroma.Snapshot) {
	hop := float64(fftSize) * (1 - overlap)
	t := float64(frame) * hop / sampleRate

	var sb strings.Builder
	for k, v := range snap.Chroma {
		n := int(v * barWidth)
		fmt.Fprintf(&sb, " %s:%s%s", chroma.Names[k],
			strings.Repeat("#", n),
			strings.Repeat(".", barWidth-n))
	}

	fmt.Printf("%8.3fs level %.2f%s\n", t, snap.Level, sb.String())
}
