// Package fault defines the error taxonomy shared across the
// orchestration core. Every error that crosses a package boundary is
// classified into a Kind, which drives retry policy, caller-visible
// status mapping, and log severity.
package fault

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Kind classifies an error for propagation and retry decisions.
type Kind string

const (
	// KindBadInput marks caller-supplied data as malformed. Surfaced to
	// the caller; never retried.
	KindBadInput Kind = "bad_input"

	// KindAccessDenied marks a principal as lacking rights on the target.
	KindAccessDenied Kind = "access_denied"

	// KindNotFound marks a missing workflow, conversation, proposal, or
	// document reference.
	KindNotFound Kind = "not_found"

	// KindTransient marks a storage or network error deemed retriable.
	KindTransient Kind = "transient"

	// KindAgentFailed marks an agent that returned a failure result.
	// Step retry policy applies.
	KindAgentFailed Kind = "agent_failed"

	// KindFatalConfig marks an unknown agent type or corrupt template.
	// The owning workflow fails without retry.
	KindFatalConfig Kind = "fatal_config"

	// KindCancelled marks cooperative cancellation. Not a failure.
	KindCancelled Kind = "cancelled"

	// KindResolveDropped marks an edit operation that could not be
	// placed onto the document. Non-fatal; siblings proceed.
	KindResolveDropped Kind = "resolve_dropped"

	// KindContinuityInvalid marks continuity validation violations.
	// Returned as data, never propagated as a failure.
	KindContinuityInvalid Kind = "continuity_invalid"
)

// Error is a Kind-tagged error. Use New/Wrap to construct and KindOf
// or the Is* predicates to classify.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a Kind-tagged error with a formatted message.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an existing error with a Kind and context message. A nil
// err returns nil so call sites can wrap unconditionally.
func Wrap(kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from an error chain. Context cancellation
// and deadline errors classify as KindCancelled even when untagged;
// everything else untagged classifies as KindTransient, which keeps
// unclassified infrastructure errors on the retry path.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	return KindTransient
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// Retryable reports whether an error should re-enqueue the owning step.
// Only transient infrastructure failures and agent failures retry.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindTransient, KindAgentFailed:
		return true
	default:
		return false
	}
}

// Terminal reports whether an error must fail the workflow immediately,
// bypassing retry.
func Terminal(err error) bool {
	return KindOf(err) == KindFatalConfig
}

const (
	backoffBase = 2 * time.Second
	backoffCap  = 30 * time.Second
)

// Backoff returns the delay before retry attempt n (0-indexed):
// exponential from a 2s base, capped at 30s.
func Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := backoffBase
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= backoffCap {
			return backoffCap
		}
	}
	if d > backoffCap {
		return backoffCap
	}
	return d
}
