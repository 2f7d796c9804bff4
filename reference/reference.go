// Package reference loads precomputed chroma sequences, one vector per
// analysis frame of a reference performance, in the same shape and range the
// chroma package emits. Comparison and alignment are left to the consumer.
package reference

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-chroma/chroma"
)

// Sequence is an ordered series of reference chroma vectors.
type Sequence []chroma.Vector

// Decode reads a sequence from nested JSON arrays: [[12 values], ...].
// Every inner array must have exactly 12 elements in [0,1]; malformed data
// is reported as an error, never coerced.
func Decode(r io.Reader) (Sequence, error) {
	var raw [][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reference: decode: %w", err)
	}

	seq := make(Sequence, len(raw))

	for i, frame := range raw {
		if len(frame) != chroma.NumClasses {
			return nil, fmt.Errorf("reference: frame %d has %d values, want %d", i, len(frame), chroma.NumClasses)
		}

		for k, v := range frame {
			if !(v >= 0 && v <= 1) {
				return nil, fmt.Errorf("reference: frame %d class %d out of range [0,1]: %v", i, k, v)
			}

			seq[i][k] = v
		}
	}

	return seq, nil
}

// LoadFile reads a sequence from a JSON file.
func LoadFile(path string) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
