package runner_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley"
	"parley/pkg/adapters/memory"
	"parley/pkg/domain"
	"parley/pkg/dsl"
	"parley/pkg/runner"
)

func transitEngine(t *testing.T) *parley.Engine {
	t.Helper()

	dialog, err := dsl.NewDialog().
		Step("next_train").
		Slot("Station", "What station?").
		Slot("Line", "What line?").
		Slot("Direction", "Inbound or outbound?").
		Handle(func(ctx context.Context, slots domain.SlotView) (string, error) {
			direction, _ := slots.Get("Direction")
			line, _ := slots.Get("Line")
			station, _ := slots.Get("Station")
			return fmt.Sprintf("The next %s %s train from %s leaves in 5 minutes.", direction, line, station), nil
		}).
		Transition("Should I text you?").
		Step("send_text").
		Handle(func(ctx context.Context, slots domain.SlotView) (string, error) {
			return "OK, I'll text you.", nil
		}).
		Build()
	require.NoError(t, err)

	eng, err := parley.New(dialog)
	require.NoError(t, err)
	return eng
}

func TestRunner_ScriptedConversation(t *testing.T) {
	in := strings.NewReader("Park St\nRed\nInbound\nyes\n")
	var out bytes.Buffer

	r := &runner.Runner{Handler: runner.NewTextHandler(in, &out)}
	sess := domain.NewSession("conv-1")

	err := r.Run(context.Background(), transitEngine(t), sess)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "What station?")
	assert.Contains(t, got, "What line?")
	assert.Contains(t, got, "Inbound or outbound?")
	assert.Contains(t, got, "The next Inbound Red train from Park St leaves in 5 minutes....Should I text you?")
	assert.Contains(t, got, "OK, I'll text you.")
	assert.Equal(t, domain.SessionCompleted, sess.Status)
}

func TestRunner_EOFEndsConversationCleanly(t *testing.T) {
	in := strings.NewReader("Park St\n") // input ends mid-dialog
	var out bytes.Buffer

	r := &runner.Runner{Handler: runner.NewTextHandler(in, &out)}
	sess := domain.NewSession("conv-1")

	err := r.Run(context.Background(), transitEngine(t), sess)
	require.NoError(t, err)

	v, ok := sess.Get("Station")
	require.True(t, ok)
	assert.Equal(t, "Park St", v)
	assert.Equal(t, domain.SessionActive, sess.Status)
}

func TestRunner_PersistsEveryTurn(t *testing.T) {
	store := memory.NewStore()
	in := strings.NewReader("Park St\n")
	var out bytes.Buffer

	r := &runner.Runner{
		Handler: runner.NewTextHandler(in, &out),
		Store:   store,
	}
	sess := domain.NewSession("conv-1")
	require.NoError(t, r.Run(context.Background(), transitEngine(t), sess))

	saved, err := store.Load(context.Background(), "conv-1")
	require.NoError(t, err)
	v, ok := saved.Get("Station")
	require.True(t, ok)
	assert.Equal(t, "Park St", v)
}
