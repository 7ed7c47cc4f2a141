package harness

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/shapedec/gpu"
)

// traceEntry is one stimulus in a YAML trace file. A command word is given
// either as a raw 32-hex-digit `word`, or by naming fields; unnamed fields
// stay zero. Entries with neither reset nor valid set are idle steps.
type traceEntry struct {
	Reset bool   `yaml:"reset"`
	Valid bool   `yaml:"valid"`
	Word  string `yaml:"word"`

	Shape   uint8  `yaml:"shape"`
	X0      uint8  `yaml:"x0"`
	Y0      uint8  `yaml:"y0"`
	X1      uint8  `yaml:"x1"`
	Y1      uint8  `yaml:"y1"`
	X2      uint8  `yaml:"x2"`
	Y2      uint8  `yaml:"y2"`
	Fill    bool   `yaml:"fill"`
	Color   uint32 `yaml:"color"`
	BgColor uint32 `yaml:"bg_color"`
}

func (e traceEntry) word() (gpu.CommandWord, error) {
	if e.Word != "" {
		return parseHexWord(e.Word)
	}

	word := gpu.WordBuilder{}.
		WithShapeType(e.Shape).
		WithP0(e.X0, e.Y0).
		WithP1(e.X1, e.Y1).
		WithP2(e.X2, e.Y2).
		WithFillEnable(e.Fill).
		WithColor(e.Color).
		WithBgColor(e.BgColor).
		Build()

	return word, nil
}

func parseHexWord(s string) (gpu.CommandWord, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(h) > 32 {
		return gpu.CommandWord{},
			fmt.Errorf("word %q is wider than 128 bits", s)
	}
	h = strings.Repeat("0", 32-len(h)) + h

	hi, err := strconv.ParseUint(h[:16], 16, 64)
	if err != nil {
		return gpu.CommandWord{}, fmt.Errorf("parsing word %q: %w", s, err)
	}
	lo, err := strconv.ParseUint(h[16:], 16, 64)
	if err != nil {
		return gpu.CommandWord{}, fmt.Errorf("parsing word %q: %w", s, err)
	}

	return gpu.CommandWord{Hi: hi, Lo: lo}, nil
}

// ParseTrace parses a YAML stimulus trace.
func ParseTrace(data []byte) ([]Stimulus, error) {
	var entries []traceEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing trace: %w", err)
	}

	stimuli := make([]Stimulus, 0, len(entries))
	for i, e := range entries {
		word, err := e.word()
		if err != nil {
			return nil, fmt.Errorf("trace entry %d: %w", i, err)
		}

		stimuli = append(stimuli, Stimulus{
			Reset: e.Reset,
			Valid: e.Valid,
			Word:  word,
		})
	}

	return stimuli, nil
}

// LoadTraceFile loads a YAML stimulus trace from a file.
func LoadTraceFile(path string) ([]Stimulus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading trace: %w", err)
	}

	return ParseTrace(data)
}
