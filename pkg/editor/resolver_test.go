package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

func intPtr(n int) *int { return &n }

const sampleBody = `# Notes

The quick brown fox jumps over the lazy dog.

## Details

Some middle paragraph with unique content here.

The quick brown fox appears again in this line.
`

func TestFrontmatterEnd(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"no frontmatter", "plain text", 0},
		{"simple block", "---\ntitle: x\n---\nbody", 16},
		{"unterminated fence", "---\ntitle: x\nbody", 0},
		{"dashes mid-document", "text\n---\nmore", 0},
		{"empty block", "---\n---\nbody", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FrontmatterEnd(tt.body))
		})
	}
}

func TestResolveExactOffsets(t *testing.T) {
	needle := "quick brown fox"
	start := 13
	end := start + len(needle)
	require.Equal(t, needle, sampleBody[start:end])

	op := models.EditorOperation{
		OpType:       models.OpReplaceRange,
		Start:        intPtr(start),
		End:          intPtr(end),
		Text:         "swift auburn fox",
		OriginalText: needle,
	}
	r, err := Resolve(sampleBody, op, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Confidence)
	assert.Equal(t, strategyExactOffsets, r.Strategy)
	assert.Equal(t, start, r.Start)
	assert.Equal(t, end, r.End)
	assert.Equal(t, "swift auburn fox", r.Text)
}

func TestResolveExactOffsetsRejectsMismatch(t *testing.T) {
	// Offsets point at the wrong text, so the resolver falls through to
	// the verbatim search.
	op := models.EditorOperation{
		OpType:       models.OpReplaceRange,
		Start:        intPtr(0),
		End:          intPtr(7),
		Text:         "x",
		OriginalText: "unique content",
	}
	r, err := Resolve(sampleBody, op, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, strategyVerbatim, r.Strategy)
	assert.Equal(t, 0.9, r.Confidence)
	assert.Equal(t, "unique content", sampleBody[r.Start:r.End])
}

func TestResolveAnchorUnique(t *testing.T) {
	op := models.EditorOperation{
		OpType:     models.OpInsertAfterHeading,
		AnchorText: "## Details",
		Text:       "New paragraph.",
	}
	r, err := Resolve(sampleBody, op, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.9, r.Confidence)
	assert.Equal(t, strategyAnchorMatch, r.Strategy)
	assert.Equal(t, r.Start, r.End)
	assert.Equal(t, "New paragraph.\n", r.Text)

	applied := ApplyOperations(sampleBody, []models.ResolvedOperation{r})
	assert.Contains(t, applied, "## Details\nNew paragraph.\n")
}

func TestResolveAnchorAmbiguous(t *testing.T) {
	body := "# A\none\n# A\ntwo\n"
	op := models.EditorOperation{
		OpType:          models.OpInsertAfterHeading,
		AnchorText:      "# A",
		Text:            "inserted",
		OccurrenceIndex: 1,
	}
	r, err := Resolve(body, op, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.7, r.Confidence)
	// Second heading's line ends at offset 12.
	assert.Equal(t, 12, r.Start)
}

func TestResolveVerbatimOccurrenceTieBreakByCursor(t *testing.T) {
	op := models.EditorOperation{
		OpType:       models.OpReplaceRange,
		OriginalText: "The quick brown fox",
		Text:         "replaced",
	}
	// Cursor near the end of the document prefers the second occurrence.
	cursor := len(sampleBody) - 5
	r, err := Resolve(sampleBody, op, 0, intPtr(cursor))
	require.NoError(t, err)
	assert.Equal(t, strategyVerbatim, r.Strategy)
	assert.Greater(t, r.Start, 50)

	// Without a cursor the first occurrence wins.
	r2, err := Resolve(sampleBody, op, 0, nil)
	require.NoError(t, err)
	assert.Less(t, r2.Start, 50)
}

func TestResolveWhitespaceNormalised(t *testing.T) {
	op := models.EditorOperation{
		OpType:       models.OpReplaceRange,
		OriginalText: "Some  middle   paragraph with\nunique content",
		Text:         "x",
	}
	r, err := Resolve(sampleBody, op, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, strategyNormalised, r.Strategy)
	assert.Equal(t, 0.75, r.Confidence)
	assert.Equal(t, "Some middle paragraph with unique content", sampleBody[r.Start:r.End])
}

func TestResolvePrefixSuffix(t *testing.T) {
	// Middle of the quoted passage was paraphrased; only the eight-token
	// ends survive verbatim.
	body := "Alpha beta gamma delta epsilon zeta eta theta MIDDLE words that differ wildly here iota kappa lambda mu nu xi omicron pi.\n"
	op := models.EditorOperation{
		OpType:       models.OpReplaceRange,
		OriginalText: "Alpha beta gamma delta epsilon zeta eta theta completely other middle iota kappa lambda mu nu xi omicron pi.",
		Text:         "x",
	}
	r, err := Resolve(body, op, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, strategyPrefixSuffix, r.Strategy)
	assert.Equal(t, 0.5, r.Confidence)
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, len(body)-1, r.End)
}

func TestResolveEmptyDocumentFallback(t *testing.T) {
	body := "---\ntitle: x\n---\n"
	fmEnd := FrontmatterEnd(body)
	op := models.EditorOperation{
		OpType: models.OpReplaceRange,
		Text:   "first content",
	}
	r, err := Resolve(body, op, fmEnd, nil)
	require.NoError(t, err)
	assert.Equal(t, strategyEmptyDocument, r.Strategy)
	assert.Equal(t, 0.7, r.Confidence)
	assert.Equal(t, fmEnd, r.Start)
	assert.Equal(t, fmEnd, r.End)
}

func TestResolveCursorFallback(t *testing.T) {
	op := models.EditorOperation{
		OpType:       models.OpReplaceRange,
		OriginalText: "text that exists nowhere in the body at all",
		Text:         "inserted",
	}
	r, err := Resolve(sampleBody, op, 0, intPtr(20))
	require.NoError(t, err)
	assert.Equal(t, strategyCursor, r.Strategy)
	assert.Equal(t, 0.3, r.Confidence)
	assert.Equal(t, 20, r.Start)
	assert.Equal(t, 20, r.End)
}

func TestResolveEmptyOriginalSkipsSearchStrategies(t *testing.T) {
	// No offsets, no anchor, no original text, non-empty body, no
	// cursor: nothing can place it.
	op := models.EditorOperation{OpType: models.OpReplaceRange, Text: "x"}
	_, err := Resolve(sampleBody, op, 0, nil)
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindResolveDropped))
}

func TestResolveClampsIntoFrontmatter(t *testing.T) {
	body := "---\ntitle: x\n---\nreal body text\n"
	fmEnd := FrontmatterEnd(body)
	// Agent offsets reach into the frontmatter.
	op := models.EditorOperation{
		OpType: models.OpReplaceRange,
		Start:  intPtr(4),
		End:    intPtr(fmEnd + 4),
		Text:   "replacement",
	}
	r, err := Resolve(body, op, fmEnd, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.Start, fmEnd)
}

func TestResolveDeleteRangeEmptiesText(t *testing.T) {
	op := models.EditorOperation{
		OpType:       models.OpDeleteRange,
		OriginalText: "unique content",
		Text:         "should be ignored",
	}
	r, err := Resolve(sampleBody, op, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "", r.Text)
}
