package puzzles

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed answers.yaml
var answersYAML []byte

// Expected holds the known answers of one day; an empty part is unchecked.
type Expected struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Part returns the expected answer for part 1 or 2.
func (e Expected) Part(n int) string {
	if n == 1 {
		return e.Part1
	}

	return e.Part2
}

// LoadAnswers decodes a YAML mapping of "YYYY/DD" keys to Expected.
func LoadAnswers(r io.Reader) (map[string]Expected, error) {
	var m map[string]Expected
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("puzzles: decode answers: %w", err)
	}

	return m, nil
}

// Answers returns the expected answers for the embedded inputs.
func Answers() (map[string]Expected, error) {
	return LoadAnswers(bytes.NewReader(answersYAML))
}
