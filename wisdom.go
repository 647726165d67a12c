package fftplan

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// Wisdom is the engine's store of previously discovered good execution
// strategies, keyed by problem shape. Plans built at Measure rigor or
// above record into the default store; a planner with WisdomRestriction
// set refuses to plan without a matching entry.
type Wisdom = engine.Wisdom

// NewWisdom creates a new empty wisdom store, independent of the default
// one. Useful for exporting measurement campaigns without touching global
// state.
func NewWisdom() *Wisdom {
	return engine.NewWisdom()
}

// ImportWisdom loads wisdom from a file in the format produced by
// ExportWisdom, merging it into the default store.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := engine.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ImportWisdomFromString loads wisdom from a string. This is useful for
// embedding wisdom data in compiled binaries.
func ImportWisdomFromString(data string) error {
	if err := engine.DefaultWisdom.Import(strings.NewReader(data)); err != nil {
		return fmt.Errorf("failed to import wisdom from string: %w", err)
	}

	return nil
}

// ExportWisdom saves the default wisdom store to a file. The file can be
// loaded later with ImportWisdom.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, engine.DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom store to a file.
func ExportWisdomTo(filename string, wisdom *Wisdom) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer f.Close()

	if err := wisdom.Export(f); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}

// ClearWisdom removes all entries from the default wisdom store.
func ClearWisdom() {
	engine.DefaultWisdom.Clear()
}

// WisdomLen returns the number of entries in the default wisdom store.
func WisdomLen() int {
	return engine.DefaultWisdom.Len()
}
