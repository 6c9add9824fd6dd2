package history

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"checkgrip/internal/domain"
)

// DefaultSize is the number of entries kept when no size is given
const DefaultSize = 200

// Entry is one delivered selection notification
type Entry struct {
	At       time.Time
	ID       domain.ID
	Previous domain.ID
}

// Recorder keeps the most recent selection notifications. Record is called
// from the selection listener, so entries keep delivery order.
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry
	size    int
	now     func() time.Time
}

// NewRecorder creates a recorder holding at most size entries
func NewRecorder(size int) *Recorder {
	if size <= 0 {
		size = DefaultSize
	}
	return &Recorder{
		size: size,
		now:  time.Now,
	}
}

// Record appends an entry, dropping the oldest when full
func (r *Recorder) Record(id, previous domain.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry{At: r.now(), ID: id, Previous: previous})
	if len(r.entries) > r.size {
		r.entries = append([]Entry(nil), r.entries[len(r.entries)-r.size:]...)
	}
}

// Entries returns a copy, oldest first
func (r *Recorder) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of stored entries
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Render formats the history newest first for the pager
func (r *Recorder) Render() string {
	entries := r.Entries()
	if len(entries) == 0 {
		return "No selection changes yet\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Selection history (%d)\n\n", len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(&b, "%s  %s  (was %s)\n", e.At.Format("15:04:05.000"), display(e.ID), display(e.Previous))
	}
	return b.String()
}

func display(id domain.ID) string {
	if id == domain.NoID {
		return "<none>"
	}
	return string(id)
}
