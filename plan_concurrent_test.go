package fftplan

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

// Plan creation and destruction funnel through the engine's planner lock;
// hammering them from many goroutines must not race or corrupt plans.
func TestPlan_ConcurrentCreateDestroy(t *testing.T) {
	t.Parallel()

	const (
		workers = 8
		rounds  = 50
	)

	var g errgroup.Group

	for w := 0; w < workers; w++ {
		n := 4 + w%5
		g.Go(func() error {
			for r := 0; r < rounds; r++ {
				in := make([]complex128, n)
				out := make([]complex128, n)

				in[0] = complex(float64(r), 1)

				plan, err := NewPlanner().
					InputComplex(in).
					OutputComplex(out).
					Dim1(n).
					Plan()
				if err != nil {
					return err
				}

				if err := plan.Execute(); err != nil {
					plan.Destroy()
					return err
				}

				plan.Destroy()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

// Distinct plans may execute concurrently from distinct goroutines.
func TestPlan_ConcurrentExecuteDistinctPlans(t *testing.T) {
	t.Parallel()

	const workers = 8

	type job struct {
		plan *IoPlan[complex128, complex128]
		in   []complex128
		out  []complex128
		n    int
	}

	jobs := make([]job, workers)
	for w := range jobs {
		n := 8 + w
		in := make([]complex128, n)
		out := make([]complex128, n)

		in[0] = 1 // impulse: every spectrum bin is exactly 1

		plan, err := NewPlanner().
			InputComplex(in).
			OutputComplex(out).
			Dim1(n).
			Plan()
		if err != nil {
			t.Fatalf("worker %d: Plan: %v", w, err)
		}

		jobs[w] = job{plan: plan, in: in, out: out, n: n}
	}

	defer func() {
		for _, j := range jobs {
			j.plan.Destroy()
		}
	}()

	var g errgroup.Group

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			for r := 0; r < 100; r++ {
				if err := j.plan.Execute(); err != nil {
					return err
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for w, j := range jobs {
		for k, v := range j.out {
			assertApproxComplex128Tolf(t, v, 1, 1e-12, "worker %d bin %d", w, k)
		}
	}
}
