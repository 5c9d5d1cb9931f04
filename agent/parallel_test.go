package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/llmcouncil/core"
	"github.com/hupe1980/llmcouncil/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGather_PreservesOrderUnderReverseDelays(t *testing.T) {
	a := testutil.NewFakeAgent("A", "a").WithDelay(60 * time.Millisecond)
	b := testutil.NewFakeAgent("B", "b").WithDelay(30 * time.Millisecond)
	c := testutil.NewFakeAgent("C", "c")

	out, err := Gather(context.Background(), []core.Agent{a, b, c}, "prompt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out)
}

func TestGather_RunsConcurrently(t *testing.T) {
	agents := make([]core.Agent, 0, 5)
	for _, n := range []string{"1", "2", "3", "4", "5"} {
		agents = append(agents, testutil.NewFakeAgent(n, n).WithDelay(50*time.Millisecond))
	}

	start := time.Now()
	_, err := Gather(context.Background(), agents, "prompt")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestGather_SamePromptToAll(t *testing.T) {
	a := testutil.NewFakeAgent("A", "a")
	b := testutil.NewFakeAgent("B", "b")

	_, err := Gather(context.Background(), []core.Agent{a, b}, "shared")
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, a.Prompts())
	assert.Equal(t, []string{"shared"}, b.Prompts())
}

func TestGather_Empty(t *testing.T) {
	out, err := Gather(context.Background(), nil, "prompt")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGather_RecoversPanics(t *testing.T) {
	ok := testutil.NewFakeAgent("Fine", "fine").WithDelay(20 * time.Millisecond)
	bad := testutil.NewFakeAgent("Bad").WithPanic("kaboom")

	var (
		out []string
		err error
	)
	require.NotPanics(t, func() {
		out, err = Gather(context.Background(), []core.Agent{ok, bad}, "prompt")
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrAgentPanic))
	assert.True(t, strings.Contains(err.Error(), "Bad: kaboom"))
	assert.Equal(t, 1, ok.Calls())
}
