package editor

import "strings"

// FrontmatterEnd returns the byte offset just past the closing "---"
// line of a YAML frontmatter block at the start of body, or 0 when the
// document has no frontmatter. Edit operations never land inside the
// frontmatter; resolved ranges are clamped to start at or after this
// offset.
func FrontmatterEnd(body string) int {
	if !strings.HasPrefix(body, "---") {
		return 0
	}
	// The opening fence must be the whole first line.
	firstLineEnd := strings.IndexByte(body, '\n')
	if firstLineEnd == -1 || strings.TrimRight(body[:firstLineEnd], "\r") != "---" {
		return 0
	}

	offset := firstLineEnd + 1
	for offset < len(body) {
		lineEnd := strings.IndexByte(body[offset:], '\n')
		var line string
		var next int
		if lineEnd == -1 {
			line = body[offset:]
			next = len(body)
		} else {
			line = body[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}
		if strings.TrimRight(line, "\r") == "---" {
			return next
		}
		offset = next
	}
	// Unterminated fence: treat the document as having no frontmatter
	// rather than protecting the whole body.
	return 0
}
