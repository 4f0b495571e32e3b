package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"cookieadmin/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRelayer struct{ mock.Mock }

func (m *mockRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestOutboxRelayJob_Start(t *testing.T) {
	t.Run("should reject batch size out of range", func(t *testing.T) {
		var buf bytes.Buffer
		job := NewOutboxRelayJob(new(mockRelayer), 0, newTestLogger(&buf))

		err := job.Start()

		require.Error(t, err)
	})

	t.Run("should start and stop", func(t *testing.T) {
		var buf bytes.Buffer
		relayer := new(mockRelayer)
		relayer.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
		job := NewOutboxRelayJob(relayer, 100, newTestLogger(&buf))

		require.NoError(t, job.Start())
		job.Stop()

		assert.Contains(t, buf.String(), "Outbox relay job started")
		assert.Contains(t, buf.String(), "Outbox relay job stopped")
	})
}

func TestOutboxRelayJob_Tick(t *testing.T) {
	cmd, err := commands.NewRelayOutboxCommand(50)
	require.NoError(t, err)

	t.Run("should pass the configured batch", func(t *testing.T) {
		var buf bytes.Buffer
		relayer := new(mockRelayer)
		relayer.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.RelayOutboxCommand) bool {
			return c.BatchSize() == 50
		})).Return(3, nil).Once()
		job := NewOutboxRelayJob(relayer, 50, newTestLogger(&buf))

		job.tick(context.Background(), cmd)

		relayer.AssertExpectations(t)
		assert.Contains(t, buf.String(), "count=3")
		assert.NotContains(t, buf.String(), "level=ERROR")
	})

	t.Run("should log failures with the partial count", func(t *testing.T) {
		var buf bytes.Buffer
		relayer := new(mockRelayer)
		relayer.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("broker unavailable")).Once()
		job := NewOutboxRelayJob(relayer, 50, newTestLogger(&buf))

		job.tick(context.Background(), cmd)

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "broker unavailable")
		assert.Contains(t, buf.String(), "relayed=1")
	})

	t.Run("should stay quiet when nothing is pending", func(t *testing.T) {
		var buf bytes.Buffer
		relayer := new(mockRelayer)
		relayer.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Once()
		job := NewOutboxRelayJob(relayer, 50, newTestLogger(&buf))

		job.tick(context.Background(), cmd)

		assert.Empty(t, buf.String())
	})
}
