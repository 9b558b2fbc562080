package presence

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hupe1980/bitvec"
)

// Tracker records one presence flag per slot of a fixed window.
//
// All methods are safe for concurrent use.
type Tracker struct {
	origin     time.Time
	resolution time.Duration
	slots      int
	clock      func() time.Time
	logger     *Logger

	mu   sync.RWMutex
	bits *bitvec.BitVector
}

// New creates a Tracker whose window starts at origin truncated to the
// configured resolution.
func New(origin time.Time, optFns ...Option) (*Tracker, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.resolution <= 0 || opts.slots <= 0 {
		return nil, fmt.Errorf("%w: resolution %s, slots %d", ErrInvalidConfig, opts.resolution, opts.slots)
	}
	// The whole window must be expressible as a time.Duration.
	if int64(opts.slots) > math.MaxInt64/int64(opts.resolution) {
		return nil, fmt.Errorf("%w: %d slots of %s overflow the window", ErrInvalidConfig, opts.slots, opts.resolution)
	}

	bits, err := bitvec.NewZero(opts.slots)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	origin = origin.Truncate(opts.resolution)

	return &Tracker{
		origin:     origin,
		resolution: opts.resolution,
		slots:      opts.slots,
		clock:      opts.clock,
		logger:     opts.logger.WithOrigin(origin).WithSlots(opts.slots),
		bits:       bits,
	}, nil
}

// rawSlot maps at to a slot number without bounds checking. Times before the
// origin map to -1.
func (t *Tracker) rawSlot(at time.Time) int {
	if at.Before(t.origin) {
		return -1
	}
	return int(at.Sub(t.origin) / t.resolution)
}

// Slot returns the slot covering at and whether it lies inside the window.
func (t *Tracker) Slot(at time.Time) (int, bool) {
	s := t.rawSlot(at)
	return s, s >= 0 && s < t.slots
}

// Window returns the half-open interval [from, to) covered by the tracker.
func (t *Tracker) Window() (from, to time.Time) {
	return t.origin, t.origin.Add(time.Duration(t.slots) * t.resolution)
}

// Resolution returns the width of one slot.
func (t *Tracker) Resolution() time.Duration { return t.resolution }

func (t *Tracker) reject(op string, at time.Time, cause error) error {
	err := fmt.Errorf("%w: %s at %s: %w", ErrOutsideWindow, op, at.Format(time.RFC3339), cause)
	t.logger.LogRejected(context.Background(), op, at, cause)
	return err
}

// Mark sets the slot covering at.
func (t *Tracker) Mark(at time.Time) error {
	return t.update("mark", at, at, true)
}

// MarkNow marks the slot covering the current clock time.
func (t *Tracker) MarkNow() error {
	return t.Mark(t.clock())
}

// Unmark clears the slot covering at.
func (t *Tracker) Unmark(at time.Time) error {
	return t.update("unmark", at, at, false)
}

// MarkSpan sets every slot from the one covering from through the one
// covering to, inclusive. Endpoints may be given in either order. Nothing is
// written if either endpoint is outside the window.
func (t *Tracker) MarkSpan(from, to time.Time) error {
	return t.update("mark span", from, to, true)
}

// UnmarkSpan clears every slot from the one covering from through the one
// covering to, inclusive.
func (t *Tracker) UnmarkSpan(from, to time.Time) error {
	return t.update("unmark span", from, to, false)
}

func (t *Tracker) update(op string, from, to time.Time, value bool) error {
	i, j := t.rawSlot(from), t.rawSlot(to)

	t.mu.Lock()
	res := t.bits.SetRange(i, j, value)
	t.mu.Unlock()

	if !res.Ok() {
		if _, ok := t.Slot(from); ok {
			return t.reject(op, to, res.Err())
		}
		return t.reject(op, from, res.Err())
	}

	t.logger.LogMark(context.Background(), min(i, j), max(i, j), value)
	return nil
}

// Seen reports whether the slot covering at is marked.
func (t *Tracker) Seen(at time.Time) (bool, error) {
	t.mu.RLock()
	seen, err := t.bits.Get(t.rawSlot(at)).Get()
	t.mu.RUnlock()

	if err != nil {
		return false, t.reject("seen", at, err)
	}
	return seen, nil
}

// SeenThroughout reports whether every slot from the one covering from
// through the one covering to is marked.
func (t *Tracker) SeenThroughout(from, to time.Time) (bool, error) {
	t.mu.RLock()
	res := t.bits.GetRange(t.rawSlot(from), t.rawSlot(to))
	t.mu.RUnlock()

	seen, err := res.Get()
	if err != nil {
		if _, ok := t.Slot(from); ok {
			return false, t.reject("seen throughout", to, err)
		}
		return false, t.reject("seen throughout", from, err)
	}
	return seen, nil
}

// SeenSlots returns the number of marked slots.
func (t *Tracker) SeenSlots() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.bits.Count()
}

// SeenDuration returns the total time covered by marked slots.
func (t *Tracker) SeenDuration() time.Duration {
	return time.Duration(t.SeenSlots()) * t.resolution
}

// Snapshot returns a copy of the slot flags.
func (t *Tracker) Snapshot() *bitvec.BitVector {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.bits.Clone()
}

func (t *Tracker) sameWindow(other *Tracker) error {
	if !t.origin.Equal(other.origin) || t.resolution != other.resolution || t.slots != other.slots {
		from, to := other.Window()
		return fmt.Errorf("%w: %s..%s every %s", ErrWindowMismatch,
			from.Format(time.RFC3339), to.Format(time.RFC3339), other.resolution)
	}
	return nil
}

// Merge marks every slot that is marked in other.
func (t *Tracker) Merge(other *Tracker) error {
	if err := t.sameWindow(other); err != nil {
		return err
	}
	if other == t {
		return nil
	}

	snap := other.Snapshot()

	t.mu.Lock()
	defer t.mu.Unlock()

	merged, err := bitvec.Or(t.bits, snap)
	if err != nil {
		return err
	}
	t.bits = merged
	return nil
}

// Common returns the slots marked in both t and other.
func (t *Tracker) Common(other *Tracker) (*bitvec.BitVector, error) {
	if err := t.sameWindow(other); err != nil {
		return nil, err
	}

	snap := other.Snapshot()

	t.mu.RLock()
	defer t.mu.RUnlock()

	return bitvec.And(t.bits, snap)
}

// Missing returns the slots that are not marked.
func (t *Tracker) Missing() *bitvec.BitVector {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return bitvec.Not(t.bits)
}

// Reset clears every slot.
func (t *Tracker) Reset() {
	t.mu.Lock()
	cleared := t.bits.Count()
	t.bits.Clear()
	t.mu.Unlock()

	t.logger.LogReset(context.Background(), cleared)
}

// String renders the slots as '0'/'1' characters, slot 0 first.
func (t *Tracker) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.bits.String()
}
