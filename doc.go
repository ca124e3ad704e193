// Package picker provides weighted random student selection with per-pick
// weight decay, plus a spin-animation scheduler for dramatizing a pick.
//
// Each pick reduces the selected student's future likelihood, so nobody
// is picked disproportionately often and over time every student
// converges toward being picked. When all weights reach zero the roster
// is exhausted and stays so until an explicit weight reset.
//
// # Quick Start
//
//	cfg := picker.DefaultConfig()
//
//	roster, err := picker.NewRoster(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := roster.Load(ctx, source.File("class.csv")); err != nil {
//	    log.Fatal(err)
//	}
//
//	student, ok := roster.Pick()
//	if !ok {
//	    // every weight is zero; call roster.ResetWeights() to continue
//	}
//
// # Animated Picks
//
// The spin subpackage reveals a pick slot-machine style: a window of
// slots rotates over a repeating name strip and decelerates onto the
// picked name.
//
//	sched, err := spin.NewScheduler(cfg.Spinner,
//	    spin.WithFrameFunc(render),
//	    spin.WithDoneFunc(announce),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sched.SetStrip(roster.Names())
//
//	if student, ok := roster.Pick(); ok {
//	    sched.Start(student.Name)
//	}
//
// The scheduler schedules each animation step through a Clock capability,
// so tests drive complete spins on a virtual clock. See the testing
// subpackage for the manual clock and the source subpackage for JSON and
// CSV class file loading.
package picker
