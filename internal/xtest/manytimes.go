package xtest

import (
	"math/rand/v2"
	"testing"
	"time"
)

type (
	TestFunc func(t testing.TB, r *rand.Rand)

	manyTimesOptions struct {
		timeout time.Duration
		minRuns int
	}
	ManyTimesOption func(o *manyTimesOptions)
)

// StopAfter bounds the total time of repeated runs.
func StopAfter(timeout time.Duration) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.timeout = timeout
	}
}

// MinRuns makes test run at least n times even if the time is over.
func MinRuns(n int) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.minRuns = n
	}
}

// TestManyTimes repeats test with a fresh random source until the time is
// over. The seed of a failed run is logged so the run can be reproduced.
func TestManyTimes(t testing.TB, test TestFunc, opts ...ManyTimesOption) {
	t.Helper()

	options := manyTimesOptions{
		timeout: 100 * time.Millisecond,
		minRuns: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	start := time.Now()
	for runs := 0; runs < options.minRuns || time.Since(start) < options.timeout; runs++ {
		seed := uint64(start.UnixNano()) + uint64(runs)
		runTest(t, seed, test)
		if t.Failed() {
			t.Logf("failed with seed %d", seed)

			return
		}
	}
}

func runTest(t testing.TB, seed uint64, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}
	defer tw.doCleanup()

	test(tw, rand.New(rand.NewPCG(seed, seed)))
}

// testWrapper runs cleanups after each repetition instead of the whole test.
type testWrapper struct {
	testing.TB

	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	for len(tw.cleanup) > 0 {
		last := tw.cleanup[len(tw.cleanup)-1]
		tw.cleanup = tw.cleanup[:len(tw.cleanup)-1]

		last()
	}
}
