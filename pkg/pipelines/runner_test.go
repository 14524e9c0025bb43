package pipelines

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *captureNotifier) Notify(_ context.Context, title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, title)
}

func staticTargets(ids ...string) func(ctx context.Context) ([]Target, error) {
	return func(context.Context) ([]Target, error) {
		targets := make([]Target, 0, len(ids))
		for _, id := range ids {
			targets = append(targets, Target{ID: id})
		}
		return targets, nil
	}
}

func TestRunOnce_FailureIsolation(t *testing.T) {
	notifier := &captureNotifier{}
	runner := NewRunner(notifier)
	defer runner.cancel()

	var handled atomic.Int32
	pipeline := Pipeline{
		Name:           "test",
		Interval:       time.Minute,
		ConcurrencyCap: 2,
		Discover:       staticTargets("a", "b", "c"),
		Handle: func(_ context.Context, target Target) error {
			handled.Add(1)
			if target.ID == "b" {
				return errors.New("boom")
			}
			return nil
		},
	}

	runner.runOnce(context.Background(), pipeline)

	assert.Equal(t, int32(3), handled.Load(), "a failing target must not stop siblings")
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "1/3 targets failed")
}

func TestRunOnce_ConcurrencyCap(t *testing.T) {
	runner := NewRunner(nil)
	defer runner.cancel()

	var inFlight, peak atomic.Int32
	pipeline := Pipeline{
		Name:           "capped",
		Interval:       time.Minute,
		ConcurrencyCap: 2,
		Discover:       staticTargets("a", "b", "c", "d", "e"),
		Handle: func(context.Context, Target) error {
			now := inFlight.Add(1)
			for {
				old := peak.Load()
				if now <= old || peak.CompareAndSwap(old, now) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			return nil
		},
	}

	runner.runOnce(context.Background(), pipeline)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunOnce_TargetTimeout(t *testing.T) {
	runner := NewRunner(nil)
	defer runner.cancel()

	var timedOut atomic.Bool
	pipeline := Pipeline{
		Name:           "slow",
		Interval:       time.Minute,
		ConcurrencyCap: 1,
		TargetTimeout:  25 * time.Millisecond,
		Discover:       staticTargets("slow"),
		Handle: func(ctx context.Context, _ Target) error {
			select {
			case <-ctx.Done():
				timedOut.Store(true)
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return nil
			}
		},
	}

	done := make(chan struct{})
	go func() {
		runner.runOnce(context.Background(), pipeline)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runOnce did not honour the per-target timeout")
	}
	assert.True(t, timedOut.Load())
}

func TestRegister_Validation(t *testing.T) {
	runner := NewRunner(nil)
	defer runner.cancel()

	err := runner.Register(Pipeline{Name: "no_handlers", Interval: time.Minute})
	require.Error(t, err)

	err = runner.Register(Pipeline{
		Name:     "no_interval",
		Discover: staticTargets("x"),
		Handle:   func(context.Context, Target) error { return nil },
	})
	require.Error(t, err)

	err = runner.Register(Pipeline{
		Name:     "ok",
		Interval: time.Minute,
		Discover: staticTargets("x"),
		Handle:   func(context.Context, Target) error { return nil },
	})
	require.NoError(t, err)
}
