package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"parley/pkg/domain"
)

func TestCollector_CountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	hooks := c.Hooks()
	ctx := context.Background()

	hooks.OnSlotFill(ctx, &domain.SlotEvent{SessionID: "s", Slot: "Station", Value: "Park St"})
	hooks.OnSlotFill(ctx, &domain.SlotEvent{SessionID: "s", Slot: "Station", Value: "Alewife"})
	hooks.OnPrompt(ctx, &domain.SlotEvent{SessionID: "s", Step: "next_train", Slot: "Line"})
	hooks.OnStepRun(ctx, &domain.StepEvent{SessionID: "s", Step: "next_train", Mode: domain.ModeQuestion})

	assert.Equal(t, float64(2), testutil.ToFloat64(c.slotFills.WithLabelValues("Station")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.prompts.WithLabelValues("Line")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.stepRuns.WithLabelValues("next_train", "question")))
}
