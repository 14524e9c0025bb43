// Package masking redacts credentials and other sensitive material
// from tool results and error messages before they reach agent
// conversations, logs, or stored trails.
package masking

import (
	"log/slog"
	"regexp"
)

// maskedValue replaces every credential match.
const maskedValue = "***MASKED***"

// failClosedNotice replaces the whole content when masking itself
// panics or misbehaves; leaking is worse than losing one tool result.
const failClosedNotice = "[REDACTED: masking failed, content withheld]"

// pattern is one compiled redaction rule.
type pattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// builtinPatterns covers the credential shapes tool servers commonly
// echo back: API keys, bearer tokens, basic-auth URLs, private keys.
var builtinPatterns = []pattern{
	{
		name:        "api_key_assignment",
		regex:       regexp.MustCompile(`(?i)((?:api[_-]?key|apikey|secret|token|password|passwd|pwd)["']?\s*[:=]\s*["']?)[^\s"',;]{8,}`),
		replacement: "${1}" + maskedValue,
	},
	{
		name:        "bearer_token",
		regex:       regexp.MustCompile(`(?i)(bearer\s+)[a-z0-9._\-]{16,}`),
		replacement: "${1}" + maskedValue,
	},
	{
		name:        "authorization_header",
		regex:       regexp.MustCompile(`(?i)(authorization["']?\s*[:=]\s*["']?)[^\s"',;]{8,}`),
		replacement: "${1}" + maskedValue,
	},
	{
		name:        "basic_auth_url",
		regex:       regexp.MustCompile(`(://[^/\s:@]+:)[^@\s]+(@)`),
		replacement: "${1}" + maskedValue + "${2}",
	},
	{
		name:        "aws_access_key",
		regex:       regexp.MustCompile(`\b(AKIA|ASIA)[A-Z0-9]{16}\b`),
		replacement: maskedValue,
	},
	{
		name:        "private_key_block",
		regex:       regexp.MustCompile(`(?s)-----BEGIN [A-Z ]*PRIVATE KEY-----.*?-----END [A-Z ]*PRIVATE KEY-----`),
		replacement: maskedValue,
	},
	{
		name:        "openai_style_key",
		regex:       regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{20,}\b`),
		replacement: maskedValue,
	},
}

// Service applies redaction rules. Stateless after construction and
// safe for concurrent use.
type Service struct {
	patterns []pattern
	logger   *slog.Logger
}

// NewService creates a masking service with the builtin rules plus any
// extra patterns (already-valid regexes are expected; invalid extras
// are logged and skipped).
func NewService(extra map[string]string) *Service {
	s := &Service{
		patterns: builtinPatterns,
		logger:   slog.With("component", "masking"),
	}
	for name, raw := range extra {
		re, err := regexp.Compile(raw)
		if err != nil {
			s.logger.Error("Skipping invalid masking pattern", "pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, pattern{name: name, regex: re, replacement: maskedValue})
	}
	return s
}

// MaskToolResult redacts credentials in tool output. Fail-closed: if a
// rule panics the whole content is withheld.
func (s *Service) MaskToolResult(content string) (masked string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Masking panicked, withholding content", "panic", r)
			masked = failClosedNotice
		}
	}()

	masked = content
	for _, p := range s.patterns {
		masked = p.regex.ReplaceAllString(masked, p.replacement)
	}
	return masked
}

// MaskError redacts credentials in an error message before it is
// stored or streamed.
func (s *Service) MaskError(msg string) string {
	return s.MaskToolResult(msg)
}
