package tools

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToolName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		server  string
		tool    string
		wantErr bool
	}{
		{name: "simple", input: "web-search.query", server: "web-search", tool: "query"},
		{name: "tool with dots", input: "pricing.lookup.v2", server: "pricing", tool: "lookup.v2"},
		{name: "no dot", input: "query", wantErr: true},
		{name: "empty server", input: ".query", wantErr: true},
		{name: "empty tool", input: "server.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, tool, err := splitToolName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.server, server)
			assert.Equal(t, tt.tool, tool)
		})
	}
}

func TestParseArguments(t *testing.T) {
	args, err := parseArguments(`{"q": "movable type", "limit": 5}`)
	require.NoError(t, err)
	assert.Equal(t, "movable type", args["q"])
	assert.Equal(t, float64(5), args["limit"])

	args, err = parseArguments("  ")
	require.NoError(t, err)
	assert.Empty(t, args)

	_, err = parseArguments(`{"q": `)
	require.Error(t, err)
}

func TestIdempotencyKey(t *testing.T) {
	a := idempotencyKey("web-search", "query", `{"q":"x"}`)
	b := idempotencyKey("web-search", "query", `{"q":"x"}`)
	c := idempotencyKey("web-search", "query", `{"q":"y"}`)
	d := idempotencyKey("pricing", "query", `{"q":"x"}`)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestTruncateResult(t *testing.T) {
	short := "small result"
	assert.Equal(t, short, TruncateResult(short, 100))

	lines := strings.Repeat("a line of output that repeats\n", 200)
	got := TruncateResult(lines, 100) // 400-char budget
	assert.Less(t, len(got), len(lines))
	assert.Contains(t, got, "[TRUNCATED")
	// The kept part must end at a line boundary.
	kept := got[:strings.Index(got, "\n\n[TRUNCATED")]
	assert.True(t, strings.HasSuffix(kept, "repeats"))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 3, EstimateTokens("twelve chars"))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want RecoveryAction
	}{
		{name: "nil", err: nil, want: NoRetry},
		{name: "cancelled", err: context.Canceled, want: NoRetry},
		{name: "deadline", err: context.DeadlineExceeded, want: NoRetry},
		{name: "eof", err: io.EOF, want: RetryNewSession},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: RetryNewSession},
		{name: "broken pipe", err: errors.New("write: broken pipe"), want: RetryNewSession},
		{name: "rate limit", err: errors.New("429 rate limit exceeded"), want: RetrySameSession},
		{name: "tool-level failure", err: errors.New("unknown namespace"), want: NoRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}
