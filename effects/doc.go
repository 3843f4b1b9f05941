// Package effects holds the operations that are not pure: they depend on
// the clock or on a random source, so the same call may behave differently
// twice.
//
// Delay runs a function later on its own goroutine. Calls are tracked by a
// Scheduler, which can cancel them, wait for them and report the panics
// they raised. A Timer is the handle of one call and carries the TimeSpan
// it was scheduled over.
//
// Shuffle returns a random permutation of a slice. ShuffleWith takes an
// explicit *rand.Rand for reproducible results.
//
// Scheduler events go to a zap.Logger, a no-op one unless WithLogger says
// otherwise:
//
//	s := effects.NewScheduler(effects.WithLogger(effects.NewConsoleLogger()))
//	defer s.Shutdown()
//	effects.DelayOn(s, func(names ...string) { fmt.Println(names) }, 10*time.Millisecond, "a", "b")
package effects
