package spin

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pickertesting "github.com/Alex-2504834/RandomStudentPicker/testing"
	"github.com/Alex-2504834/RandomStudentPicker/types"
)

type frameRecorder struct {
	frames []types.SpinFrame
	done   []string
}

func (r *frameRecorder) onFrame(f types.SpinFrame) { r.frames = append(r.frames, f) }
func (r *frameRecorder) onDone(target string)      { r.done = append(r.done, target) }

func newTestScheduler(t *testing.T, cfg Config, rec *frameRecorder, mc *pickertesting.ManualClock) *Scheduler {
	t.Helper()

	s, err := NewScheduler(cfg,
		WithClock(mc),
		WithLogger(pickertesting.NewTestLogger(t)),
		WithRand(rand.New(rand.NewSource(1))),
		WithFrameFunc(rec.onFrame),
		WithDoneFunc(rec.onDone),
	)
	require.NoError(t, err)

	return s
}

func TestNewScheduler_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SlotCount = 4 // even: no center slot

	_, err := NewScheduler(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid spin config")
}

func TestScheduler_PlannedSteps(t *testing.T) {
	cfg := Config{SlotCount: 3, StripRepeat: 2, FullSpins: 2, Speed: 50}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)

	s.SetStrip([]string{"A", "B", "C"})
	require.Equal(t, 6, s.StripLength())

	// Strip [A B C A B C], start center 1 (B): nearest forward C is one
	// step away, so the plan is 2 full rotations plus 1.
	s.mu.Lock()
	require.True(t, s.startFrom("C", 1))

	mc.RunAll()

	// 13 advancing frames plus the forced landing frame.
	require.Len(t, rec.frames, 14)

	for i, frame := range rec.frames[:13] {
		require.Equal(t, i, frame.Step)
		require.Equal(t, 13, frame.Total)
		require.False(t, frame.Final)
		require.Len(t, frame.Window, 3)
	}

	final := rec.frames[13]
	require.True(t, final.Final)
	require.Equal(t, 13, final.Step)
	require.Equal(t, 1, final.CenterSlot)
	require.Equal(t, "C", final.Window[final.CenterSlot])

	require.Equal(t, []string{"C"}, rec.done)
	require.Equal(t, types.SpinIdle, s.State())
}

func TestScheduler_LandsWithoutForcing(t *testing.T) {
	// After start + total advances the modulo arithmetic alone must sit on
	// the target; the forced-center backstop only confirms it.
	cfg := Config{SlotCount: 3, StripRepeat: 2, FullSpins: 2, Speed: 50}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)
	s.SetStrip([]string{"A", "B", "C"})

	s.mu.Lock()
	require.True(t, s.startFrom("A", 4))

	mc.RunAll()

	// Start 4 (B), nearest forward A at index 0, distance 2: total 14.
	last := rec.frames[len(rec.frames)-2] // last advancing frame
	require.Equal(t, 13, last.Step)
	require.Equal(t, "A", last.Window[last.CenterSlot])
}

func TestScheduler_StartRandomizesWithinStrip(t *testing.T) {
	cfg := Config{SlotCount: 3, StripRepeat: 3, FullSpins: 2, Speed: 50}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)
	s.SetStrip([]string{"A", "B", "C"})

	require.True(t, s.Start("B"))
	mc.RunAll()

	require.NotEmpty(t, rec.frames)
	final := rec.frames[len(rec.frames)-1]
	require.True(t, final.Final)
	require.Equal(t, "B", final.Window[final.CenterSlot])

	// Total stays within [fullSpins*len, fullSpins*len + len).
	require.GreaterOrEqual(t, final.Total, 18)
	require.Less(t, final.Total, 27)
}

func TestScheduler_ReentrantStartIsNoOp(t *testing.T) {
	cfg := Config{SlotCount: 3, StripRepeat: 2, FullSpins: 1, Speed: 50}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)
	s.SetStrip([]string{"A", "B"})

	require.True(t, s.Start("A"))
	require.Equal(t, types.SpinSpinning, s.State())

	// A few steps in, a second request must be rejected without touching
	// the running timeline.
	mc.RunNext()
	mc.RunNext()
	require.False(t, s.Start("B"))

	mc.RunAll()

	require.Equal(t, []string{"A"}, rec.done)
	final := rec.frames[len(rec.frames)-1]
	require.Equal(t, "A", final.Window[final.CenterSlot])
}

func TestScheduler_EmptyStripIsNoOp(t *testing.T) {
	cfg := Config{SlotCount: 3, StripRepeat: 2, FullSpins: 1, Speed: 50}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)

	s.SetStrip(nil)

	require.False(t, s.Start("Alice"))
	require.Equal(t, 0, mc.Pending())
	require.Empty(t, rec.frames)
	require.Empty(t, rec.done)
	require.Equal(t, types.SpinIdle, s.State())
}

func TestScheduler_AbsentTargetStillLands(t *testing.T) {
	cfg := Config{SlotCount: 3, StripRepeat: 2, FullSpins: 2, Speed: 50}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)
	s.SetStrip([]string{"A", "B"})

	s.mu.Lock()
	require.True(t, s.startFrom("Zoe", 0))

	mc.RunAll()

	// Fallback plan: fullSpins rotations with no landing distance.
	final := rec.frames[len(rec.frames)-1]
	require.Equal(t, 8, final.Total)
	require.True(t, final.Final)
	// The landing backstop still shows the picked name.
	require.Equal(t, "Zoe", final.Window[final.CenterSlot])
	require.Equal(t, []string{"Zoe"}, rec.done)
}

func TestScheduler_SetSpeedDoesNotAffectInFlightRun(t *testing.T) {
	cfg := Config{
		SlotCount:    3,
		StripRepeat:  2,
		FullSpins:    1,
		Speed:        0, // slow bounds
		SlowMinDelay: 10 * time.Millisecond,
		SlowMaxDelay: 100 * time.Millisecond,
		FastMinDelay: time.Millisecond,
		FastMaxDelay: 10 * time.Millisecond,
	}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)
	s.SetStrip([]string{"A", "B"})

	s.mu.Lock()
	require.True(t, s.startFrom("A", 0))

	// First step is queued at zero delay; fire it, then change speed.
	mc.RunNext()
	s.SetSpeed(100)

	mc.RunAll()

	total := rec.frames[0].Total
	expected := time.Duration(0)
	for i := range total {
		expected += stepDelay(i, total, cfg.SlowMinDelay, cfg.SlowMaxDelay)
	}
	require.Equal(t, expected, mc.Now(), "in-flight run must keep its slow delay snapshot")

	// The next run picks up the fast bounds.
	require.True(t, s.Start("B"))
	startedAt := mc.Now()
	mc.RunAll()
	fastElapsed := mc.Now() - startedAt
	require.Less(t, fastElapsed, expected)
}

func TestScheduler_ResetAbandonsRun(t *testing.T) {
	cfg := Config{SlotCount: 3, StripRepeat: 2, FullSpins: 2, Speed: 50}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)
	s.SetStrip([]string{"A", "B", "C"})

	require.True(t, s.Start("C"))
	mc.RunNext()
	mc.RunNext()

	s.Reset()
	require.Equal(t, types.SpinIdle, s.State())

	framesAtReset := len(rec.frames)
	mc.RunAll()

	require.Len(t, rec.frames, framesAtReset, "abandoned run must not render further frames")
	require.Empty(t, rec.done)
}

func TestScheduler_Subscribe(t *testing.T) {
	cfg := Config{SlotCount: 3, StripRepeat: 2, FullSpins: 1, Speed: 50}
	rec := &frameRecorder{}
	mc := pickertesting.NewManualClock()
	s := newTestScheduler(t, cfg, rec, mc)
	s.SetStrip([]string{"A", "B"})

	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	require.Equal(t, types.SpinIdle, <-ch)

	require.True(t, s.Start("A"))
	mc.RunAll()

	require.Equal(t, types.SpinSpinning, <-ch)
	require.Equal(t, types.SpinLanded, <-ch)
	require.Equal(t, types.SpinIdle, <-ch)
}

func TestScheduler_RestartFromDoneCallback(t *testing.T) {
	cfg := Config{SlotCount: 3, StripRepeat: 2, FullSpins: 1, Speed: 50}
	mc := pickertesting.NewManualClock()

	var done []string
	var s *Scheduler
	restarted := false

	var err error
	s, err = NewScheduler(cfg,
		WithClock(mc),
		WithRand(rand.New(rand.NewSource(7))),
		WithDoneFunc(func(target string) {
			done = append(done, target)
			if !restarted {
				restarted = true
				require.True(t, s.Start("B"), "scheduler must be Idle inside the done callback")
			}
		}),
	)
	require.NoError(t, err)

	s.SetStrip([]string{"A", "B"})
	require.True(t, s.Start("A"))
	mc.RunAll()

	require.Equal(t, []string{"A", "B"}, done)
}
