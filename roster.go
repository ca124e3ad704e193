package picker

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// Roster holds the current set of students and their mutable weight and
// pick-count state, and performs weighted selection with per-pick decay.
//
// Insertion order is preserved: it is the display order and the order the
// spin strip is built from. The roster knows nothing about timing or
// rendering.
//
// All methods are safe for concurrent use.
type Roster struct {
	mu       sync.RWMutex
	students []types.Student
	index    map[uint64]int // xxh3 name hash -> first index with that name

	defaultWeight float64
	decay         float64
	rng           *rand.Rand

	logger  types.Logger
	metrics types.MetricsCollector
}

// NewRoster creates an empty roster.
//
// Parameters:
//   - cfg: Configuration (nil uses defaults); missing fields are defaulted
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithRand)
//
// Returns:
//   - *Roster: A new empty roster
//   - error: Configuration validation error
//
// Example:
//
//	cfg := picker.DefaultConfig()
//	roster, err := picker.NewRoster(&cfg, picker.WithLogger(logger))
//	if err != nil { /* handle */ }
//	roster.SetStudents(students)
func NewRoster(cfg *Config, opts ...Option) (*Roster, error) {
	var local Config
	if cfg != nil {
		local = *cfg
	}
	SetDefaults(&local)
	if err := local.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	r := &Roster{
		index:         make(map[uint64]int),
		defaultWeight: local.DefaultWeight,
		decay:         local.WeightDecreaseAmount,
	}

	o := applyOptions(opts)
	r.logger = o.logger
	r.metrics = o.metrics
	r.rng = o.rng
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // fairness, not security
	}

	return r, nil
}

// SetStudents replaces the roster wholesale.
//
// Prior selection and weight history is discarded; callers reload it from
// external storage. Weights and counts on the given students are kept as
// provided (roster sources apply defaulting for missing fields).
//
// Parameters:
//   - students: New roster content in display order
func (r *Roster) SetStudents(students []types.Student) {
	r.mu.Lock()

	r.students = make([]types.Student, len(students))
	copy(r.students, students)

	r.index = make(map[uint64]int, len(students))
	for i, st := range r.students {
		key := xxh3.HashString(st.Name)
		if _, exists := r.index[key]; !exists {
			r.index[key] = i
		}
	}

	count := len(r.students)
	r.mu.Unlock()

	r.metrics.RecordRosterSize(count)
	r.logger.Info("roster replaced", "students", count)
}

// Load replaces the roster with the students from a source.
//
// On source failure the prior roster state is left untouched.
//
// Parameters:
//   - ctx: Context for cancellation and deadline
//   - src: Roster source to load from
//
// Returns:
//   - error: Load or parse failure from the source
func (r *Roster) Load(ctx context.Context, src types.RosterSource) error {
	students, err := src.LoadStudents(ctx)
	if err != nil {
		return err
	}

	r.SetStudents(students)

	return nil
}

// Pick performs one weighted random selection.
//
// Eligibility is weight > 0; each eligible student's probability is
// proportional to its current weight. The draw is a single uniform sample
// over [0, Σw) against the cumulative weight sums, so equal weights tie
// purely by the random draw, never by roster order.
//
// On selection the student's count increases by exactly 1 and its weight
// decreases by the decay amount, clamped at 0. Exactly one student is
// mutated; all others are unchanged.
//
// Returns:
//   - types.Student: Post-mutation snapshot of the selected student
//   - bool: false when no eligible student remains (roster exhausted); no mutation occurs
func (r *Roster) Pick() (types.Student, bool) {
	r.mu.Lock()

	eligible := make([]int, 0, len(r.students))
	cumulative := make([]float64, 0, len(r.students))
	total := 0.0
	for i := range r.students {
		if r.students[i].Weight > 0 {
			total += r.students[i].Weight
			eligible = append(eligible, i)
			cumulative = append(cumulative, total)
		}
	}

	if len(eligible) == 0 {
		r.mu.Unlock()
		r.metrics.RecordExhausted()
		r.logger.Debug("pick attempted with no eligible students")

		return types.Student{}, false
	}

	draw := r.rng.Float64() * total
	selected := eligible[len(eligible)-1]
	for pos, cum := range cumulative {
		if draw < cum {
			selected = eligible[pos]
			break
		}
	}

	st := &r.students[selected]
	st.Count++
	st.Weight = max(st.Weight-r.decay, 0)

	snapshot := *st
	r.mu.Unlock()

	r.metrics.RecordPick(snapshot.Name)
	r.logger.Debug("student picked",
		"name", snapshot.Name,
		"count", snapshot.Count,
		"weight", snapshot.Weight,
	)

	return snapshot, true
}

// ResetAll sets every student's count to 0 and weight to the default.
//
// Total and idempotent; never fails.
func (r *Roster) ResetAll() {
	r.mu.Lock()
	for i := range r.students {
		r.students[i].Count = 0
		r.students[i].Weight = r.defaultWeight
	}
	count := len(r.students)
	r.mu.Unlock()

	r.metrics.RecordReset("full")
	r.logger.Info("roster reset", "students", count, "default_weight", r.defaultWeight)
}

// ResetWeights sets every student's weight to the default, leaving counts
// untouched.
//
// Total and idempotent; never fails.
func (r *Roster) ResetWeights() {
	r.mu.Lock()
	for i := range r.students {
		r.students[i].Weight = r.defaultWeight
	}
	count := len(r.students)
	r.mu.Unlock()

	r.metrics.RecordReset("weights")
	r.logger.Info("weights reset", "students", count, "default_weight", r.defaultWeight)
}

// Exhausted reports whether the roster is non-empty and every student's
// weight is zero or below.
//
// This is the trigger for disabling further picks until a weight reset;
// an empty roster is not exhausted, just empty.
func (r *Roster) Exhausted() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.students) == 0 {
		return false
	}
	for i := range r.students {
		if r.students[i].Weight > 0 {
			return false
		}
	}

	return true
}

// SetDecayAmount updates the per-pick weight decrease.
//
// Parameters:
//   - amount: New decay amount, must be positive
//
// Returns:
//   - error: ErrNonPositiveDecay when amount <= 0; the prior value is retained
func (r *Roster) SetDecayAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveDecay, amount)
	}

	r.mu.Lock()
	r.decay = amount
	r.mu.Unlock()

	r.logger.Info("decay amount updated", "amount", amount)

	return nil
}

// DecayAmount returns the current per-pick weight decrease.
func (r *Roster) DecayAmount() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.decay
}

// Len returns the number of students in the roster.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.students)
}

// Names returns the student names in display order.
//
// This is the order the spin strip is built from.
func (r *Roster) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.students))
	for i := range r.students {
		names[i] = r.students[i].Name
	}

	return names
}

// Students returns a copy of the roster in display order.
func (r *Roster) Students() []types.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.Student, len(r.students))
	copy(out, r.students)

	return out
}

// Lookup returns the first student with the given name.
//
// Names are the external key when persisting and matching; lookups use a
// hash index so repeated lookups stay cheap on large rosters.
//
// Parameters:
//   - name: Student name to find
//
// Returns:
//   - types.Student: Snapshot of the student
//   - bool: false when no student has that name
func (r *Roster) Lookup(name string) (types.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[xxh3.HashString(name)]
	if !ok || r.students[i].Name != name {
		return types.Student{}, false
	}

	return r.students[i], true
}

// Summary returns one human-readable line per student.
func (r *Roster) Summary() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]string, len(r.students))
	for i, st := range r.students {
		lines[i] = fmt.Sprintf("%s: picks=%d, weight=%.2f", st.Name, st.Count, st.Weight)
	}

	return lines
}

// StatsTable renders the roster as a fixed-width text table with a header
// and separator rule, suitable for monospace display.
func (r *Roster) StatsTable() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	const (
		nameWidth   = 20
		picksWidth  = 7
		weightWidth = 8
	)

	header := fmt.Sprintf("%-*s %*s %*s", nameWidth, "Name", picksWidth, "Picks", weightWidth, "Weight")

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("─", len([]rune(header))))

	for _, st := range r.students {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%-*s %*d %*.2f", nameWidth, st.Name, picksWidth, st.Count, weightWidth, st.Weight)
	}

	return b.String()
}
