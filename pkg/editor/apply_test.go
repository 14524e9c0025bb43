package editor

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/models"
)

func TestApplyOperationsDescendingOrder(t *testing.T) {
	body := "aaa bbb ccc"
	ops := []models.ResolvedOperation{
		{Start: 0, End: 3, Text: "AAAAA"},
		{Start: 8, End: 11, Text: "C"},
	}
	// The later splice runs first, so the earlier one's offsets stay
	// valid even though the replacement changes the length.
	assert.Equal(t, "AAAAA bbb C", ApplyOperations(body, ops))
}

func TestApplyOperationsInsertions(t *testing.T) {
	body := "one two"
	ops := []models.ResolvedOperation{
		{Start: 3, End: 3, Text: " and a half"},
	}
	assert.Equal(t, "one and a half two", ApplyOperations(body, ops))
}

func TestApplyOperationsClampsOutOfRange(t *testing.T) {
	body := "short"
	ops := []models.ResolvedOperation{
		{Start: 2, End: 99, Text: "X"},
	}
	assert.Equal(t, "shX", ApplyOperations(body, ops))
}

func TestApplyContentEdit(t *testing.T) {
	fmBody := "---\ntitle: x\n---\nold body\n"
	fmEnd := FrontmatterEnd(fmBody)

	t.Run("replace preserves frontmatter", func(t *testing.T) {
		out := ApplyContentEdit(fmBody, models.ContentEdit{Mode: models.ContentReplace, Content: "new body\n"}, fmEnd)
		assert.Equal(t, "---\ntitle: x\n---\nnew body\n", out)
	})

	t.Run("append adds newline separator when missing", func(t *testing.T) {
		out := ApplyContentEdit("no trailing newline", models.ContentEdit{Mode: models.ContentAppend, Content: "added"}, 0)
		assert.Equal(t, "no trailing newline\nadded", out)
	})

	t.Run("insert_at clamps into body", func(t *testing.T) {
		pos := 2
		out := ApplyContentEdit(fmBody, models.ContentEdit{Mode: models.ContentInsertAt, Content: "X", InsertPosition: &pos}, fmEnd)
		// Position 2 is inside the frontmatter, so the insert lands at
		// its end.
		assert.Equal(t, "---\ntitle: x\n---\nXold body\n", out)
	})
}

func TestResolveBatchDropsOnlyUnplaceable(t *testing.T) {
	logger := slog.Default()
	ops := []models.EditorOperation{
		{OpType: models.OpReplaceRange, OriginalText: "unique content", Text: "replaced"},
		{OpType: models.OpReplaceRange, OriginalText: "text that exists nowhere at all in this body", Text: "x"},
		{OpType: models.OpInsertAfterHeading, AnchorText: "## Details", Text: "inserted"},
	}
	result := ResolveBatch(logger, sampleBody, ops, 0, nil)
	require.Len(t, result.Resolved, 2)
	require.Len(t, result.Dropped, 1)
	assert.Equal(t, "text that exists nowhere at all in this body", result.Dropped[0].OriginalText)
}
