package editor

import (
	"strings"
	"unicode"

	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// Resolution strategy names, recorded on every resolved operation so
// proposal consumers can see how a splice was placed.
const (
	strategyExactOffsets  = "exact_offsets"
	strategyAnchorMatch   = "anchor_match"
	strategyVerbatim      = "original_text_search"
	strategyNormalised    = "whitespace_normalised_search"
	strategyPrefixSuffix  = "prefix_suffix_anchor"
	strategyEmptyDocument = "empty_document"
	strategyCursor        = "cursor_fallback"
)

// anchorTokens is the N of the prefix/suffix anchoring strategy: how
// many leading and trailing tokens of original_text are matched
// independently when the full text cannot be found.
const anchorTokens = 8

// Resolve maps one symbolic editor operation onto concrete offsets in
// body using progressive match strategies. fmEnd is the frontmatter
// boundary (see FrontmatterEnd); cursor, when non-nil, is the editor
// cursor offset used for occurrence tie-breaks and as the last-resort
// placement. An operation no strategy can place returns a
// ResolveDropped fault; the caller logs it and continues with the rest
// of the batch.
func Resolve(body string, op models.EditorOperation, fmEnd int, cursor *int) (models.ResolvedOperation, error) {
	if r, ok := resolveExactOffsets(body, op); ok {
		return finishResolved(body, op, r, fmEnd), nil
	}
	if op.OpType == models.OpInsertAfterHeading && op.AnchorText != "" {
		if r, ok := resolveAnchor(body, op, cursor); ok {
			return finishResolved(body, op, r, fmEnd), nil
		}
	}
	if op.OriginalText != "" {
		if r, ok := resolveVerbatim(body, op, cursor); ok {
			return finishResolved(body, op, r, fmEnd), nil
		}
		if r, ok := resolveNormalised(body, op, cursor); ok {
			return finishResolved(body, op, r, fmEnd), nil
		}
		if r, ok := resolvePrefixSuffix(body, op); ok {
			return finishResolved(body, op, r, fmEnd), nil
		}
	}
	if strings.TrimSpace(body[min(fmEnd, len(body)):]) == "" {
		r := models.ResolvedOperation{Start: fmEnd, End: fmEnd, Confidence: 0.7, Strategy: strategyEmptyDocument}
		return finishResolved(body, op, r, fmEnd), nil
	}
	if cursor != nil && *cursor >= fmEnd && *cursor <= len(body) {
		r := models.ResolvedOperation{Start: *cursor, End: *cursor, Confidence: 0.3, Strategy: strategyCursor}
		return finishResolved(body, op, r, fmEnd), nil
	}
	return models.ResolvedOperation{}, fault.New(fault.KindResolveDropped,
		"no strategy placed %s operation (original_text %d bytes, anchor %q)",
		op.OpType, len(op.OriginalText), op.AnchorText)
}

// finishResolved clamps the range out of the frontmatter and attaches
// the replacement text appropriate for the operation type. Insert
// operations collapse to their insertion point.
func finishResolved(body string, op models.EditorOperation, r models.ResolvedOperation, fmEnd int) models.ResolvedOperation {
	if r.Start < fmEnd {
		r.Start = fmEnd
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	if r.End > len(body) {
		r.End = len(body)
	}
	if r.Start > len(body) {
		r.Start = len(body)
	}

	switch op.OpType {
	case models.OpDeleteRange:
		r.Text = ""
	case models.OpInsertAfterHeading:
		r.Start = r.End
		r.Text = op.Text + "\n"
	case models.OpInsertAfter:
		r.Start = r.End
		r.Text = op.Text
	default:
		r.Text = op.Text
	}
	return r
}

// resolveExactOffsets trusts the agent's offsets only when they are
// plausible: both inside the body, ordered, and original_text matches
// the addressed range after whitespace normalisation.
func resolveExactOffsets(body string, op models.EditorOperation) (models.ResolvedOperation, bool) {
	if op.Start == nil || op.End == nil {
		return models.ResolvedOperation{}, false
	}
	start, end := *op.Start, *op.End
	if start < 0 || end > len(body) || start > end {
		return models.ResolvedOperation{}, false
	}
	if op.OriginalText != "" &&
		normaliseWhitespace(op.OriginalText) != normaliseWhitespace(body[start:end]) {
		return models.ResolvedOperation{}, false
	}
	return models.ResolvedOperation{Start: start, End: end, Confidence: 1.0, Strategy: strategyExactOffsets}, true
}

// resolveAnchor places an insert_after_heading at the end of the line
// containing the anchor text.
func resolveAnchor(body string, op models.EditorOperation, cursor *int) (models.ResolvedOperation, bool) {
	occurrences := findOccurrences(body, op.AnchorText)
	if len(occurrences) == 0 {
		return models.ResolvedOperation{}, false
	}
	confidence := 0.9
	if len(occurrences) > 1 {
		confidence = 0.7
	}
	at := pickOccurrence(occurrences, op.OccurrenceIndex, cursor)
	lineEnd := strings.IndexByte(body[at:], '\n')
	insertAt := len(body)
	if lineEnd != -1 {
		insertAt = at + lineEnd + 1
	}
	return models.ResolvedOperation{Start: insertAt, End: insertAt, Confidence: confidence, Strategy: strategyAnchorMatch}, true
}

func resolveVerbatim(body string, op models.EditorOperation, cursor *int) (models.ResolvedOperation, bool) {
	occurrences := findOccurrences(body, op.OriginalText)
	if len(occurrences) == 0 {
		return models.ResolvedOperation{}, false
	}
	start := pickOccurrence(occurrences, op.OccurrenceIndex, cursor)
	return models.ResolvedOperation{
		Start:      start,
		End:        start + len(op.OriginalText),
		Confidence: 0.9,
		Strategy:   strategyVerbatim,
	}, true
}

// resolveNormalised retries the verbatim search with whitespace runs
// collapsed on both sides, mapping the match back to raw offsets.
func resolveNormalised(body string, op models.EditorOperation, cursor *int) (models.ResolvedOperation, bool) {
	normBody, indexMap := normaliseWithMap(body)
	needle := normaliseWhitespace(op.OriginalText)
	if needle == "" {
		return models.ResolvedOperation{}, false
	}
	occurrences := findOccurrences(normBody, needle)
	if len(occurrences) == 0 {
		return models.ResolvedOperation{}, false
	}
	at := pickOccurrence(occurrences, op.OccurrenceIndex, cursor)
	start := indexMap[at]
	end := indexMap[at+len(needle)-1] + 1
	return models.ResolvedOperation{Start: start, End: end, Confidence: 0.75, Strategy: strategyNormalised}, true
}

// resolvePrefixSuffix anchors on the first and last anchorTokens tokens
// of original_text: the first position where both appear in order
// within a reasonable gap wins. Catches the common case of an agent
// quoting a passage whose middle was paraphrased.
func resolvePrefixSuffix(body string, op models.EditorOperation) (models.ResolvedOperation, bool) {
	tokens := strings.Fields(op.OriginalText)
	if len(tokens) < 2 {
		return models.ResolvedOperation{}, false
	}
	n := anchorTokens
	if n > len(tokens) {
		n = len(tokens)
	}
	prefix := strings.Join(tokens[:n], " ")
	suffix := strings.Join(tokens[len(tokens)-n:], " ")

	normBody, indexMap := normaliseWithMap(body)
	prefixAt := strings.Index(normBody, prefix)
	if prefixAt == -1 {
		return models.ResolvedOperation{}, false
	}
	suffixFrom := prefixAt + len(prefix)
	if prefix == suffix {
		suffixFrom = prefixAt
	}
	rel := strings.Index(normBody[suffixFrom:], suffix)
	if rel == -1 && prefix != suffix {
		// Overlapping anchors on short passages.
		rel = strings.Index(normBody[prefixAt:], suffix)
		suffixFrom = prefixAt
	}
	if rel == -1 {
		return models.ResolvedOperation{}, false
	}
	suffixAt := suffixFrom + rel

	span := suffixAt + len(suffix) - prefixAt
	maxSpan := 3 * len(normaliseWhitespace(op.OriginalText))
	if maxSpan < len(prefix)+len(suffix) {
		maxSpan = len(prefix) + len(suffix)
	}
	if span > maxSpan {
		return models.ResolvedOperation{}, false
	}
	start := indexMap[prefixAt]
	end := indexMap[suffixAt+len(suffix)-1] + 1
	return models.ResolvedOperation{Start: start, End: end, Confidence: 0.5, Strategy: strategyPrefixSuffix}, true
}

// pickOccurrence selects among multiple matches: an explicit
// occurrence_index wins, then cursor proximity, then the first match.
func pickOccurrence(occurrences []int, occurrenceIndex int, cursor *int) int {
	if occurrenceIndex > 0 && occurrenceIndex < len(occurrences) {
		return occurrences[occurrenceIndex]
	}
	if len(occurrences) > 1 && cursor != nil {
		best := occurrences[0]
		bestDist := abs(best - *cursor)
		for _, at := range occurrences[1:] {
			if d := abs(at - *cursor); d < bestDist {
				best, bestDist = at, d
			}
		}
		return best
	}
	return occurrences[0]
}

func findOccurrences(haystack, needle string) []int {
	if needle == "" {
		return nil
	}
	var out []int
	from := 0
	for {
		at := strings.Index(haystack[from:], needle)
		if at == -1 {
			return out
		}
		out = append(out, from+at)
		from += at + 1
	}
}

// normaliseWhitespace collapses every run of whitespace into a single
// space and trims the ends.
func normaliseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normaliseWithMap collapses whitespace runs in s and returns the
// normalised string together with a map from each normalised byte
// index back to its raw offset in s.
func normaliseWithMap(s string) (string, []int) {
	var b strings.Builder
	indexMap := make([]int, 0, len(s))
	inSpace := true // leading whitespace is dropped entirely
	for i, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				indexMap = append(indexMap, i)
				inSpace = true
			}
			continue
		}
		inSpace = false
		for k := 0; k < len(string(r)); k++ {
			indexMap = append(indexMap, i+k)
		}
		b.WriteRune(r)
	}
	norm := b.String()
	// Trailing separator, if any, is harmless for Index searches but
	// trimmed for parity with normaliseWhitespace.
	if strings.HasSuffix(norm, " ") {
		norm = norm[:len(norm)-1]
		indexMap = indexMap[:len(indexMap)-1]
	}
	return norm, indexMap
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
