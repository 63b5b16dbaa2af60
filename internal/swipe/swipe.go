// Package swipe translates a continuous per-row drag signal into a discrete
// action decision: idle -> dragging -> committing/cancelling -> settled.
// A Controller is owned by the UI event loop; it is not safe for concurrent
// use from multiple goroutines.
package swipe

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/hylla/listan/internal/haptics"
)

// Phase is the state of one swipe session.
type Phase int

// Session phases. A settled session is destroyed, so "settled" is the same
// as having no session at all.
const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
	PhaseCancelling
)

// Action identifies which background affordance a committed swipe triggers.
type Action int

// Swipe actions: left for negative offsets, right for positive ones.
const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
)

// Decision is the outcome of a gesture end.
type Decision struct {
	Action    Action
	Committed bool
}

// Config holds the gesture geometry and settle-spring parameters.
type Config struct {
	// MaxSwipe clamps |dragOffset|.
	MaxSwipe float64
	// CommitThreshold is the minimum |finalOffset| that commits; it must be
	// below MaxSwipe.
	CommitThreshold float64
	// FPS, Frequency and Damping shape the spring that returns the row to
	// rest after the gesture ends.
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultConfig matches the source geometry: 80 units of travel, commit at
// 60 (75%).
func DefaultConfig() Config {
	return Config{
		MaxSwipe:        80,
		CommitThreshold: 60,
		FPS:             60,
		Frequency:       7.0,
		Damping:         1.0,
	}
}

func (c Config) sanitized() Config {
	if c.MaxSwipe <= 0 {
		c.MaxSwipe = DefaultConfig().MaxSwipe
	}
	if c.CommitThreshold <= 0 || c.CommitThreshold >= c.MaxSwipe {
		c.CommitThreshold = c.MaxSwipe * 0.75
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Frequency <= 0 {
		c.Frequency = 7.0
	}
	if c.Damping <= 0 {
		c.Damping = 1.0
	}
	return c
}

// session is the ephemeral per-row gesture state: created on gesture start,
// destroyed on settle.
type session struct {
	phase    Phase
	offset   float64
	velocity float64
	action   Action
}

// ActionFunc is invoked exactly once when a swipe commits.
type ActionFunc func(rowID string, action Action)

// Controller runs one swipe session per row.
type Controller struct {
	cfg      Config
	spring   harmonica.Spring
	sink     haptics.Sink
	onAction ActionFunc
	sessions map[string]*session
}

// NewController constructs a controller. sink and onAction may be nil.
func NewController(cfg Config, sink haptics.Sink, onAction ActionFunc) *Controller {
	cfg = cfg.sanitized()
	if sink == nil {
		sink = haptics.Noop()
	}
	return &Controller{
		cfg:      cfg,
		spring:   harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		sink:     sink,
		onAction: onAction,
		sessions: make(map[string]*session),
	}
}

// Start opens a drag session for the row. Starting while a previous session
// is mid-settle cancels the in-flight return animation and adopts the new
// raw input: last-writer-wins on the drag offset.
func (c *Controller) Start(rowID string) {
	if s, ok := c.sessions[rowID]; ok {
		s.phase = PhaseDragging
		s.velocity = 0
		s.action = ActionNone
		return
	}
	c.sessions[rowID] = &session{phase: PhaseDragging}
}

// Update tracks the raw drag delta, clamped to [-MaxSwipe, +MaxSwipe], and
// returns the clamped offset. Updates for rows without a dragging session
// are dropped.
func (c *Controller) Update(rowID string, offset float64) float64 {
	s, ok := c.sessions[rowID]
	if !ok || s.phase != PhaseDragging {
		return 0
	}
	s.offset = clamp(offset, -c.cfg.MaxSwipe, c.cfg.MaxSwipe)
	return s.offset
}

// End decides the gesture outcome. Past the commit threshold the row's
// action callback fires exactly once, synchronously; otherwise the session
// cancels. Either way the row animates back to rest through Step. Ending a
// session that is not dragging is a no-op, so overlapping gestures on one
// row can never double-fire a commit.
func (c *Controller) End(rowID string, finalOffset float64) Decision {
	s, ok := c.sessions[rowID]
	if !ok || s.phase != PhaseDragging {
		return Decision{}
	}
	s.offset = clamp(finalOffset, -c.cfg.MaxSwipe, c.cfg.MaxSwipe)
	s.velocity = 0

	if math.Abs(s.offset) > c.cfg.CommitThreshold {
		s.phase = PhaseCommitting
		if s.offset < 0 {
			s.action = ActionLeft
		} else {
			s.action = ActionRight
		}
		c.sink.Emit(haptics.KindImpactMed)
		if c.onAction != nil {
			c.onAction(rowID, s.action)
		}
		return Decision{Action: s.action, Committed: true}
	}

	s.phase = PhaseCancelling
	return Decision{}
}

// Step advances every settling session one animation frame and destroys the
// ones that reached rest. It reports whether any session still needs frames.
func (c *Controller) Step() bool {
	for rowID, s := range c.sessions {
		if s.phase != PhaseCommitting && s.phase != PhaseCancelling {
			continue
		}
		s.offset, s.velocity = c.spring.Update(s.offset, s.velocity, 0)
		if math.Abs(s.offset) < 0.5 && math.Abs(s.velocity) < 0.5 {
			delete(c.sessions, rowID)
		}
	}
	return c.Animating()
}

// Animating reports whether any session is mid-settle.
func (c *Controller) Animating() bool {
	for _, s := range c.sessions {
		if s.phase == PhaseCommitting || s.phase == PhaseCancelling {
			return true
		}
	}
	return false
}

// Phase returns the row's current phase; rows without a session are idle.
func (c *Controller) Phase(rowID string) Phase {
	if s, ok := c.sessions[rowID]; ok {
		return s.phase
	}
	return PhaseIdle
}

// Offset returns the row's current drag offset.
func (c *Controller) Offset(rowID string) float64 {
	if s, ok := c.sessions[rowID]; ok {
		return s.offset
	}
	return 0
}

// Reveal returns how visible the row's background affordance is, in [0, 1],
// proportional to |offset| / MaxSwipe.
func (c *Controller) Reveal(rowID string) float64 {
	return math.Abs(c.Offset(rowID)) / c.cfg.MaxSwipe
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
