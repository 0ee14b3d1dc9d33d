// Package metrics wires prometheus collectors to the engine's lifecycle
// hooks, so serving hosts get turn/slot/step counters without the core
// knowing about any metrics stack.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"parley/pkg/domain"
)

// Collector holds the dialog counters.
type Collector struct {
	slotFills *prometheus.CounterVec
	prompts   *prometheus.CounterVec
	stepRuns  *prometheus.CounterVec
}

// NewCollector creates and registers the collectors.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		slotFills: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_slot_fills_total",
				Help: "Total number of slot values written to sessions",
			},
			[]string{"slot"},
		),
		prompts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_prompts_total",
				Help: "Total number of questions asked for missing slots",
			},
			[]string{"slot"},
		),
		stepRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_step_runs_total",
				Help: "Total number of step handler executions",
			},
			[]string{"step", "mode"},
		),
	}
	reg.MustRegister(c.slotFills, c.prompts, c.stepRuns)
	return c
}

// Hooks returns lifecycle hooks feeding the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSlotFill: func(ctx context.Context, e *domain.SlotEvent) {
			c.slotFills.WithLabelValues(e.Slot).Inc()
		},
		OnPrompt: func(ctx context.Context, e *domain.SlotEvent) {
			c.prompts.WithLabelValues(e.Slot).Inc()
		},
		OnStepRun: func(ctx context.Context, e *domain.StepEvent) {
			c.stepRuns.WithLabelValues(e.Step, string(e.Mode)).Inc()
		},
	}
}
