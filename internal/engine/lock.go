package engine

import "sync"

// plannerMu serializes every call into the planning and teardown entry
// points. The planner state (wisdom store, measurement scratch) is shared
// and the entry points are not reentrant. Execute is deliberately not
// covered: executing distinct descriptors concurrently is safe by contract,
// and serializing execution would destroy throughput for plan-once,
// run-millions workloads.
var plannerMu sync.Mutex

// withPlannerLock runs f inside the planner critical section. The lock is
// released on every exit path, including a panic inside f.
func withPlannerLock[T any](f func() T) T {
	plannerMu.Lock()
	defer plannerMu.Unlock()

	return f()
}
