package processor

import (
	"image/color"

	"github.com/charmbracelet/log"
)

// Verdict is the classification outcome for one file.
type Verdict int

const (
	// VerdictKeep means the image decoded and contains at least two
	// distinct pixel values.
	VerdictKeep Verdict = iota
	// VerdictUniform means every pixel shares one channel-value tuple.
	VerdictUniform
	// VerdictCorrupted means the file could not be decoded, or decoded to
	// a zero-area image.
	VerdictCorrupted
)

func (v Verdict) String() string {
	switch v {
	case VerdictUniform:
		return "uniform"
	case VerdictCorrupted:
		return "corrupted"
	default:
		return "keep"
	}
}

// Flagged reports whether the verdict marks the file as noise.
func (v Verdict) Flagged() bool {
	return v != VerdictKeep
}

type Options struct {
	// Workers bounds the pool; zero means runtime.NumCPU().
	Workers int
	// Logger receives a line per classified file. Nil disables logging.
	Logger *log.Logger
}

type Job struct {
	Path string
	Name string
}

// Result is the verdict for a single file. Produced once, never mutated.
type Result struct {
	Path    string
	Name    string
	Verdict Verdict
	// Color is the shared pixel color when Verdict is VerdictUniform.
	Color color.Color
	// Reason carries the decode failure when Verdict is VerdictCorrupted.
	Reason string
	Size   int64
}

type Summary struct {
	Total        int
	Processed    int
	Uniform      int
	Corrupted    int
	Kept         int
	BytesScanned int64
}

type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	UniformDelta   int
	CorruptedDelta int
	BytesDelta     int64
}
