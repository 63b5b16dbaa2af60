// Package haptics is the fire-and-forget feedback sink consumed by the list
// engine. Callers emit an event kind and never wait on or inspect the result.
package haptics

import (
	"io"
	"sync"
)

// Kind identifies one feedback event.
type Kind string

// Feedback kinds emitted at gesture-commit and mutation-result events.
const (
	KindSelection   Kind = "selection"
	KindImpactLight Kind = "impact_light"
	KindImpactMed   Kind = "impact_medium"
	KindImpactHeavy Kind = "impact_heavy"
	KindSuccess     Kind = "success"
	KindWarning     Kind = "warning"
	KindError       Kind = "error"
)

// Sink receives feedback events.
type Sink interface {
	Emit(Kind)
}

type noopSink struct{}

func (noopSink) Emit(Kind) {}

// Noop returns a sink that drops everything.
func Noop() Sink { return noopSink{} }

// Bell writes a terminal bell for the heavier feedback kinds. It is the
// closest a terminal gets to a tactile tap.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell constructs a bell sink over the writer.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Emit rings for impactful events and stays quiet for selection ticks.
func (b *Bell) Emit(kind Kind) {
	switch kind {
	case KindImpactMed, KindImpactHeavy, KindSuccess, KindError:
	default:
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}

// Recorder captures emitted kinds for tests.
type Recorder struct {
	mu    sync.Mutex
	kinds []Kind
}

func (r *Recorder) Emit(kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, kind)
}

// Kinds returns a copy of everything emitted so far.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}
