package web

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports"
	"github.com/arebot/horasbot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionsGetValidatesOnceAndCaches(t *testing.T) {
	tracker := mocks.NewMockTimeTracker(t)
	tracker.EXPECT().Projects(mock.Anything).Return([]domain.Project{}, nil).Once()

	var dials atomic.Int32
	sessions := NewSessions(func(token string) ports.TimeTracker {
		dials.Add(1)
		assert.Equal(t, "tok-1", token)
		return tracker
	}, nil)

	first, err := sessions.Get(context.Background(), "tok-1")
	require.NoError(t, err)
	second, err := sessions.Get(context.Background(), "tok-1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), dials.Load())
	assert.Equal(t, 1, sessions.Len())
}

func TestSessionsGetRejectsInvalidToken(t *testing.T) {
	tracker := mocks.NewMockTimeTracker(t)
	tracker.EXPECT().Projects(mock.Anything).Return(nil, domain.ErrUnauthorized)

	sessions := NewSessions(func(string) ports.TimeTracker { return tracker }, nil)

	_, err := sessions.Get(context.Background(), "expired")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 0, sessions.Len())
}

func TestSessionsDeleteEvicts(t *testing.T) {
	tracker := mocks.NewMockTimeTracker(t)
	tracker.EXPECT().Projects(mock.Anything).Return([]domain.Project{}, nil)

	var dials atomic.Int32
	sessions := NewSessions(func(string) ports.TimeTracker {
		dials.Add(1)
		return tracker
	}, nil)

	_, err := sessions.Get(context.Background(), "tok-1")
	require.NoError(t, err)

	assert.True(t, sessions.Delete("tok-1"))
	assert.False(t, sessions.Delete("tok-1"))
	assert.Equal(t, 0, sessions.Len())

	_, err = sessions.Get(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), dials.Load())
}

func TestSessionsConcurrentFirstUseValidatesOnce(t *testing.T) {
	tracker := mocks.NewMockTimeTracker(t)
	tracker.EXPECT().Projects(mock.Anything).Return([]domain.Project{}, nil).Once()

	var dials atomic.Int32
	sessions := NewSessions(func(string) ports.TimeTracker {
		dials.Add(1)
		return tracker
	}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sessions.Get(context.Background(), "tok-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), dials.Load())
	assert.Equal(t, 1, sessions.Len())
}
