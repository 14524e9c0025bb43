package fault

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "tagged error",
			err:      New(KindBadInput, "unknown template %q", "nope"),
			expected: KindBadInput,
		},
		{
			name:     "wrapped tagged error",
			err:      fmt.Errorf("outer: %w", New(KindAccessDenied, "not the owner")),
			expected: KindAccessDenied,
		},
		{
			name:     "context canceled maps to cancelled",
			err:      fmt.Errorf("llm call: %w", context.Canceled),
			expected: KindCancelled,
		},
		{
			name:     "deadline exceeded maps to cancelled",
			err:      context.DeadlineExceeded,
			expected: KindCancelled,
		},
		{
			name:     "untagged error defaults to transient",
			err:      errors.New("connection reset by peer"),
			expected: KindTransient,
		},
		{
			name:     "inner tag wins over outer wrap",
			err:      Wrap(KindTransient, New(KindFatalConfig, "bad agent"), "step failed"),
			expected: KindTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(KindTransient, nil, "no-op"))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(New(KindTransient, "db down")))
	assert.True(t, Retryable(New(KindAgentFailed, "agent blew up")))
	assert.True(t, Retryable(errors.New("untagged")))

	assert.False(t, Retryable(New(KindBadInput, "cyclic plan")))
	assert.False(t, Retryable(New(KindFatalConfig, "unknown agent")))
	assert.False(t, Retryable(New(KindCancelled, "shutdown")))
	assert.False(t, Retryable(context.Canceled))
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(New(KindFatalConfig, "corrupt template")))
	assert.False(t, Terminal(New(KindTransient, "timeout")))
}

func TestBackoffSchedule(t *testing.T) {
	require.Equal(t, 2*time.Second, Backoff(0))
	require.Equal(t, 4*time.Second, Backoff(1))
	require.Equal(t, 8*time.Second, Backoff(2))
	require.Equal(t, 16*time.Second, Backoff(3))
	require.Equal(t, 30*time.Second, Backoff(4))
	require.Equal(t, 30*time.Second, Backoff(10))
	require.Equal(t, 2*time.Second, Backoff(-1))
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("root cause")
	err := Wrap(KindTransient, inner, "checkpoint write")
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "checkpoint write")
	assert.Contains(t, err.Error(), "root cause")
}
