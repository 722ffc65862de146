// Package quiz holds the static question bank and the adaptive selector.
package quiz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"apnidisha/internal/model"
)

//go:embed questions.json
var defaultBank []byte

// Bank maps each trait code to its ordered statement list. Loaded once at
// startup and read-only afterwards.
type Bank map[model.Trait][]string

// LoadBank reads the question bank from path, or the embedded default when
// path is empty.
func LoadBank(path string) (Bank, error) {
	data := defaultBank
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read question bank: %w", err)
		}
	}

	var bank Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	return bank, nil
}

// Questions returns the statements configured for a trait.
func (b Bank) Questions(t model.Trait) []string {
	return b[t]
}

// Size is the total number of statements across all traits.
func (b Bank) Size() int {
	n := 0
	for _, qs := range b {
		n += len(qs)
	}
	return n
}
