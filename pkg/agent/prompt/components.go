package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FormatTaskSection builds the task description section.
func FormatTaskSection(task string) string {
	var sb strings.Builder
	sb.WriteString("## Task\n\n")
	if task == "" {
		sb.WriteString("No task description provided.\n")
		return sb.String()
	}
	sb.WriteString(task)
	sb.WriteString("\n")
	return sb.String()
}

// FormatAncestorOutputs renders completed upstream step outputs,
// namespaced by step id, in deterministic order.
func FormatAncestorOutputs(outputs map[string]map[string]any) string {
	if len(outputs) == 0 {
		return "## Upstream Results\nThis is the first step; no upstream results are available.\n"
	}

	stepIDs := make([]string, 0, len(outputs))
	for id := range outputs {
		stepIDs = append(stepIDs, id)
	}
	sort.Strings(stepIDs)

	var sb strings.Builder
	sb.WriteString("## Upstream Results\n")
	for _, stepID := range stepIDs {
		sb.WriteString(fmt.Sprintf("\n### %s\n", stepID))
		data, err := json.MarshalIndent(outputs[stepID], "", "  ")
		if err != nil {
			sb.WriteString("(unrenderable output)\n")
			continue
		}
		sb.WriteString("```json\n")
		sb.Write(data)
		sb.WriteString("\n```\n")
	}
	return sb.String()
}

// FormatEditorSection renders the active document for edit-capable
// agents. The body is fenced so document content cannot masquerade as
// instructions.
func FormatEditorSection(filename, content string, cursorOffset *int) string {
	var sb strings.Builder
	sb.WriteString("## Active Document\n\n")
	sb.WriteString("**Filename:** ")
	sb.WriteString(filename)
	sb.WriteString("\n")
	if cursorOffset != nil {
		sb.WriteString(fmt.Sprintf("**Cursor offset:** %d\n", *cursorOffset))
	}
	sb.WriteString("\n<!-- DOCUMENT_START -->\n")
	sb.WriteString(content)
	sb.WriteString("\n<!-- DOCUMENT_END -->\n")
	return sb.String()
}

// FormatOutputSpecs lists the named outputs the agent must produce.
func FormatOutputSpecs(specs []string) string {
	if len(specs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Required Outputs\n")
	sb.WriteString("Produce a JSON object in your final answer with these keys:\n")
	for _, spec := range specs {
		sb.WriteString("- ")
		sb.WriteString(spec)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatPersonaSection states the response voice.
func FormatPersonaSection(persona string) string {
	if persona == "" || persona == "neutral" {
		return ""
	}
	return fmt.Sprintf("## Voice\nWrite your response in a %s voice.\n", persona)
}
