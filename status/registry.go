package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Session metric keys
const (
	KeyDropsPoured    = "drops.poured"
	KeyDropsMixed     = "drops.mixed"
	KeyDropsCulled    = "drops.culled"
	KeyOrdersSpawned  = "orders.spawned"
	KeyOrdersSkipped  = "orders.skipped"
	KeyOrdersAssigned = "orders.assigned"
	KeyOrdersServed   = "orders.served"
	KeyOrdersFailed   = "orders.failed"
	KeyOrdersPending  = "orders.pending"
	KeyRecipesReady   = "recipes.ready"
	KeyClockScale     = "clock.scale"
	KeyClockPaused    = "clock.paused"
	KeyLevelState     = "level.state"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// ResetInts zeroes every integer counter in place, cached pointers stay valid
func (r *Registry) ResetInts() {
	r.Ints.Range(func(_ string, v *atomic.Int64) {
		v.Store(0)
	})
}

// Summary renders all metrics as sorted key=value pairs
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
