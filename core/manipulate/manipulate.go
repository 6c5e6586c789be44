// Package manipulate executes split and merge plans against a document backend.
//
// Results are returned to the caller as a *Result that owns the produced
// bytes; nothing is cached between calls.
package manipulate

import (
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
)

// Source is a named input document
type Source struct {
	Name string // File name; its base name prefixes split outputs
	Data []byte
}

// MergeSource is a merge input with its placement
type MergeSource struct {
	Source
	Order int // Placement in the merged output; ties keep list position
}

// Progress reports completed work. Done counts finished items out of Total.
type Progress struct {
	Done  int
	Total int
	Item  string // Name of the item that just finished
}

// Fraction returns Done/Total in [0,1]
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}

// Options controls plan execution
type Options struct {
	// Concurrency bounds how many split outputs are produced at once.
	// Values below 1 mean runtime.NumCPU().
	Concurrency int

	// Progress is called after every completed item. Calls never overlap.
	Progress func(Progress)

	// Logger receives debug output; nil disables logging
	Logger *log.Logger
}

func (o Options) concurrency() int {
	if o.Concurrency < 1 {
		return runtime.NumCPU()
	}
	return o.Concurrency
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// progressTracker serializes progress callbacks from concurrent workers
type progressTracker struct {
	mu    sync.Mutex
	done  int
	total int
	fn    func(Progress)
}

func newProgressTracker(total int, fn func(Progress)) *progressTracker {
	return &progressTracker{total: total, fn: fn}
}

func (t *progressTracker) complete(item string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	if t.fn != nil {
		t.fn(Progress{Done: t.done, Total: t.total, Item: item})
	}
}
