package editor

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Preview renders a unified-style patch between the current body and
// the body the proposal would produce. Attached to proposals flagged
// requires_preview so the user can inspect the change before approval.
func Preview(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	dmp.DiffCleanupSemantic(diffs)
	patches := dmp.PatchMake(before, diffs)
	if len(patches) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range patches {
		b.WriteString(p.String())
	}
	return b.String()
}
