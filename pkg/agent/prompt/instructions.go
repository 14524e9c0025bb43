package prompt

// editFormatInstructions tells edit-capable agents how to emit
// symbolic operations. Offsets are advisory; the resolver re-anchors
// every operation against the snapshot body.
const editFormatInstructions = `## Edit Operations Format
When you need to modify the active document, end your answer with a JSON
array of operations:

` + "```json" + `
[
  {
    "op_type": "replace_range",
    "original_text": "exact text being replaced",
    "text": "replacement text",
    "occurrence_index": 0
  }
]
` + "```" + `

Operation types:
- replace_range: replace original_text with text
- delete_range: remove original_text
- insert_after_heading: insert text after the heading named in "anchor_text"
- insert_after: insert text after "anchor_text"

Rules:
- original_text must be copied verbatim from the document above.
- Never edit the frontmatter block between the --- markers.
- Use occurrence_index (1-based) when original_text appears more than once.
- Emit an empty array [] when no changes are needed.`

// toolUseInstructions describes the tool-calling loop contract.
const toolUseInstructions = `## Tool Use
Call tools when the task needs external information. Tool failures are
reported back to you; work around them rather than giving up. When you
have enough information, produce your final answer without further tool
calls.`
