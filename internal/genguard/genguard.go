// Package genguard de-duplicates helper-function emission within a single generated kernel
// program (spec §4.2, component C5).
package genguard

import (
	"bytes"
	"sync"
)

// Guard remembers, by byte-wise pattern equality, which helper functions have already been
// emitted into the program currently under construction. patternSize bounds how many bytes of
// a candidate pattern are compared, mirroring the reference implementation's fixed-size
// comparison window.
type Guard struct {
	mu          sync.Mutex
	patternSize int
	entries     []entry
}

type entry struct {
	pattern []byte
	name    string
}

// Generator produces the name and source of a helper function not yet seen by the guard.
type Generator func() (name string, source string, err error)

// New creates a guard that compares patterns over at most patternSize bytes. A patternSize of
// zero compares patterns in full.
func New(patternSize int) *Guard {
	return &Guard{patternSize: patternSize}
}

func (g *Guard) truncate(pattern []byte) []byte {
	if g.patternSize > 0 && len(pattern) > g.patternSize {
		return pattern[:g.patternSize]
	}
	return pattern
}

// FindGenerateFunction returns the name of the helper matching pattern. If a prior call
// already emitted a byte-equal pattern, its recorded name is returned and generate is not
// invoked again; source is empty in that case since the caller already has the definition. On
// a miss, generate is invoked, its result is recorded, and (name, source) is returned so the
// caller can append the new definition to the program under construction.
func (g *Guard) FindGenerateFunction(pattern []byte, generate Generator) (name string, source string, err error) {
	key := g.truncate(pattern)
	g.mu.Lock()
	for _, e := range g.entries {
		if bytes.Equal(e.pattern, key) {
			g.mu.Unlock()
			return e.name, "", nil
		}
	}
	g.mu.Unlock()

	name, source, err = generate()
	if err != nil {
		return "", "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.entries {
		if bytes.Equal(e.pattern, key) {
			return e.name, "", nil
		}
	}
	stored := make([]byte, len(key))
	copy(stored, key)
	g.entries = append(g.entries, entry{pattern: stored, name: name})
	return name, source, nil
}

// Reset discards all recorded emissions, as if the guard were newly constructed.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = nil
}

// Len reports the number of distinct helpers currently recorded.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}
