package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// wisdomHeader identifies the export format. Files beginning with any other
// line are rejected on import.
const wisdomHeader = "(fftplan-wisdom 1.0)"

// WisdomEntry records the outcome of planning one problem shape: the kernel
// that won and the effort level it was planned with.
type WisdomEntry struct {
	Level  int // 0=estimate .. 3=exhaustive
	Kernel string
}

// Wisdom stores previously discovered good execution strategies keyed by
// problem signature. All methods are safe for concurrent use.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[string]WisdomEntry
}

// DefaultWisdom is the store consulted by the planning entry points.
var DefaultWisdom = NewWisdom()

// NewWisdom creates an empty wisdom store.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[string]WisdomEntry)}
}

// Lookup returns the entry for a problem signature, if any.
func (w *Wisdom) Lookup(key string) (WisdomEntry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	e, ok := w.entries[key]

	return e, ok
}

// Record stores an entry, keeping the higher effort level if the signature
// is already known.
func (w *Wisdom) Record(key string, e WisdomEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if old, ok := w.entries[key]; ok && old.Level > e.Level {
		return
	}

	w.entries[key] = e
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[string]WisdomEntry)
}

// Len returns the number of stored entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Export writes the store in a line-oriented text format readable by Import.
func (w *Wisdom) Export(wr io.Writer) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	bw := bufio.NewWriter(wr)
	if _, err := fmt.Fprintln(bw, wisdomHeader); err != nil {
		return err
	}

	for key, e := range w.entries {
		if _, err := fmt.Fprintf(bw, "%d\t%s\t%s\n", e.Level, e.Kernel, key); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Import merges entries from r into the store. Entries already present keep
// whichever effort level is higher.
func (w *Wisdom) Import(r io.Reader) error {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return fmt.Errorf("engine: empty wisdom input")
	}

	if strings.TrimSpace(sc.Text()) != wisdomHeader {
		return fmt.Errorf("engine: unrecognized wisdom header %q", sc.Text())
	}

	line := 1
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		parts := strings.SplitN(text, "\t", 3)
		if len(parts) != 3 {
			return fmt.Errorf("engine: malformed wisdom entry on line %d", line)
		}

		level, err := strconv.Atoi(parts[0])
		if err != nil || level < 0 || level > 3 {
			return fmt.Errorf("engine: bad effort level on line %d", line)
		}

		w.Record(parts[2], WisdomEntry{Level: level, Kernel: parts[1]})
	}

	return sc.Err()
}
