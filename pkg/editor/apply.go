package editor

import (
	"log/slog"
	"sort"

	"github.com/scriptor-ai/scriptor/pkg/models"
)

// BatchResult pairs the operations a batch resolved with the ones it
// dropped. Dropped operations never fail the batch.
type BatchResult struct {
	Resolved []models.ResolvedOperation
	Dropped  []models.EditorOperation
}

// ResolveBatch resolves every operation in a batch independently.
// Unplaceable operations are dropped with a warning and the rest of
// the batch proceeds.
func ResolveBatch(logger *slog.Logger, body string, ops []models.EditorOperation, fmEnd int, cursor *int) BatchResult {
	var out BatchResult
	for _, op := range ops {
		resolved, err := Resolve(body, op, fmEnd, cursor)
		if err != nil {
			logger.Warn("dropping unresolvable editor operation",
				"op_type", op.OpType,
				"error", err)
			out.Dropped = append(out.Dropped, op)
			continue
		}
		out.Resolved = append(out.Resolved, resolved)
	}
	return out
}

// ApplyOperations splices resolved operations into body. Operations
// are applied in descending start order so earlier splices cannot
// shift the offsets of later ones; the caller's slice is not mutated.
func ApplyOperations(body string, ops []models.ResolvedOperation) string {
	ordered := make([]models.ResolvedOperation, len(ops))
	copy(ordered, ops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	for _, op := range ordered {
		start, end := op.Start, op.End
		if start < 0 {
			start = 0
		}
		if start > len(body) {
			start = len(body)
		}
		if end < start {
			end = start
		}
		if end > len(body) {
			end = len(body)
		}
		body = body[:start] + op.Text + body[end:]
	}
	return body
}

// ApplyContentEdit applies a whole-body content edit.
func ApplyContentEdit(body string, edit models.ContentEdit, fmEnd int) string {
	switch edit.Mode {
	case models.ContentReplace:
		// Frontmatter survives a full replace.
		return body[:min(fmEnd, len(body))] + edit.Content
	case models.ContentInsertAt:
		at := len(body)
		if edit.InsertPosition != nil {
			at = *edit.InsertPosition
		}
		if at < fmEnd {
			at = fmEnd
		}
		if at > len(body) {
			at = len(body)
		}
		return body[:at] + edit.Content + body[at:]
	default: // append
		if body == "" || body[len(body)-1] == '\n' {
			return body + edit.Content
		}
		return body + "\n" + edit.Content
	}
}
