package tools

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"
)

// RecoveryAction determines how to handle a tool call failure.
type RecoveryAction int

const (
	// NoRetry: the error is not recoverable (bad request, cancellation).
	NoRetry RecoveryAction = iota
	// RetrySameSession: transient error, retry on the existing session.
	RetrySameSession
	// RetryNewSession: transport failure, recreate the session first.
	RetryNewSession
)

const (
	// MaxRetries is the number of retry attempts after the initial failure.
	MaxRetries = 1

	// ReinitTimeout bounds session recreation during recovery.
	ReinitTimeout = 10 * time.Second

	// OperationTimeout is the per-call deadline for CallTool and
	// ListTools. Some tools are legitimately slow; the step context is
	// the hard ceiling above this.
	OperationTimeout = 90 * time.Second

	// RetryBackoffMin / RetryBackoffMax bound the jittered backoff
	// between retries.
	RetryBackoffMin = 250 * time.Millisecond
	RetryBackoffMax = 750 * time.Millisecond

	// InitTimeout is the per-server initialization timeout (transport
	// start + handshake).
	InitTimeout = 30 * time.Second
)

// ClassifyError determines the recovery action for a tool call error.
func ClassifyError(err error) RecoveryAction {
	if err == nil {
		return NoRetry
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NoRetry
	}

	// Transport-level failures: the session is gone, recreate it.
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, net.ErrClosed) {
		return RetryNewSession
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return RetryNewSession
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "session closed"),
		strings.Contains(msg, "transport"):
		return RetryNewSession
	case strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "too many requests"),
		strings.Contains(msg, "overloaded"):
		return RetrySameSession
	}

	return NoRetry
}
