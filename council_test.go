package llmcouncil

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/llmcouncil/core"
	"github.com/hupe1980/llmcouncil/internal/testutil"
	"github.com/hupe1980/llmcouncil/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoster(t *testing.T) *roster.Roster {
	t.Helper()
	r, err := roster.New(
		testutil.NewFakeAgent("Chairman (Gemini)", "intro", "summary"),
		testutil.NewFakeAgent("Council Member 1 (Mistral)", "m1"),
		testutil.NewFakeAgent("Council Member 2 (Llama 3.3)", "m2"),
	)
	require.NoError(t, err)
	return r
}

func TestCouncil_DiscussAndRetrieve(t *testing.T) {
	c, err := New(newRoster(t))
	require.NoError(t, err)

	d, err := c.Discuss(context.Background(), core.DiscussRequest{Topic: "Is remote work more productive?", Rounds: 1})
	require.NoError(t, err)
	require.Len(t, d.Result.Rounds, 2)

	stored, err := c.Discussion(d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.Result.Topic, stored.Result.Topic)
	assert.Equal(t, d.Transcript, stored.Transcript)
}

func TestCouncil_Members(t *testing.T) {
	c, err := New(newRoster(t))
	require.NoError(t, err)

	assert.Equal(t, core.MembersResponse{
		Chairman: "Chairman (Gemini)",
		Members:  []string{"Council Member 1 (Mistral)", "Council Member 2 (Llama 3.3)"},
	}, c.Members())
	assert.Len(t, c.Participants(), 3)
}

func TestCouncil_InvalidRequestIsNotStored(t *testing.T) {
	s := &MockStore{}
	c, err := New(newRoster(t), func(o *Options) { o.Store = s })
	require.NoError(t, err)

	_, err = c.Discuss(context.Background(), core.DiscussRequest{Topic: "t", Rounds: 0})
	assert.True(t, errors.Is(err, core.ErrInvalidRequest))
	s.AssertNotCalled(t, "Save", mock.Anything)
}

func TestCouncil_StoreFailureKeepsResult(t *testing.T) {
	s := &MockStore{}
	s.On("Save", mock.Anything).Return(errors.New("disk full"))

	c, err := New(newRoster(t), func(o *Options) { o.Store = s })
	require.NoError(t, err)

	d, err := c.Discuss(context.Background(), core.DiscussRequest{Topic: "t", Rounds: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	s.AssertExpectations(t)
}

func TestCouncil_UnknownDiscussion(t *testing.T) {
	c, err := New(newRoster(t))
	require.NoError(t, err)

	_, err = c.Discussion("nope")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestNew_NilRoster(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, core.ErrEmptyRoster))
}

// MockStore is a testify mock of core.DiscussionStore.
type MockStore struct{ mock.Mock }

func (m *MockStore) Save(d core.Discussion) error {
	return m.Called(d).Error(0)
}

func (m *MockStore) Get(id string) (core.Discussion, error) {
	args := m.Called(id)
	return args.Get(0).(core.Discussion), args.Error(1)
}

func (m *MockStore) Len() int { return m.Called().Int(0) }
