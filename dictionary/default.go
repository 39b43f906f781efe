package dictionary

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

var (
	//go:embed seed/lexicon.csv
	seedLexicon []byte
	//go:embed seed/matrix.def
	seedMatrix []byte
)

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the built-in dictionary. It is loaded once and shared.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Load(seedLexicon, seedMatrix)
	})
	return defaultStore, defaultErr
}

// Load builds a store from a lexicon and a matrix definition.
func Load(lexicon, matrix []byte) (*Store, error) {
	records, err := ReadRecords(bytes.NewReader(lexicon))
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	m, err := ReadMatrix(bytes.NewReader(matrix))
	if err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	return NewStore(records, m)
}
