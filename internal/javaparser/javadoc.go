package javaparser

import (
	"strings"

	"github.com/dhamidi/jparse/internal/arena"
)

// parseJavadocAttr extracts a lightweight structural summary from a raw
// Javadoc comment's text, grounded on dhamidi-sai's java/javadoc parser:
// the same leading `/** ... */` stripping and per-line ` * ` prefix
// removal, and the same split between the free-form summary body and
// `@tag ...` block tags. Unlike the teacher's javadoc package this does
// not build a full inline-tag AST ({@code}, {@link}, HTML, entities) —
// spec §1 scopes Javadoc content parsing out, so only the tag structure
// that a diagnostics/LSP client can act on directly is kept (spec §12).
func parseJavadocAttr(raw string) arena.JavadocAttr {
	lines := stripJavadocDelimiters(raw)

	var summary strings.Builder
	var tags []arena.JavadocTag

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") {
			name, rest := splitTagLine(trimmed)
			tag := arena.JavadocTag{Name: name}
			assignTagArgAndText(&tag, rest)
			tags = append(tags, tag)
			continue
		}
		if len(tags) == 0 {
			if trimmed == "" {
				continue
			}
			if summary.Len() > 0 {
				summary.WriteByte(' ')
			}
			summary.WriteString(trimmed)
			continue
		}
		if trimmed != "" {
			n := len(tags)
			tags[n-1].Text = strings.TrimSpace(tags[n-1].Text + " " + trimmed)
		}
	}

	return arena.JavadocAttr{Summary: strings.TrimSpace(summary.String()), Tags: tags}
}

// stripJavadocDelimiters removes the opening /**, the closing */, and any
// leading ` * ` line prefix from each line, mirroring the teacher's
// skipCommentStart/skipLinePrefix handling but operating line-at-a-time
// since this structural (tag-only) extraction doesn't need character-level
// inline-tag scanning.
func stripJavadocDelimiters(raw string) []string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	rawLines := strings.Split(text, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, l := range rawLines {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "*")
		l = strings.TrimPrefix(l, " ")
		lines = append(lines, l)
	}
	return lines
}

// splitTagLine separates `@name rest...` into its tag name and remainder.
func splitTagLine(line string) (name, rest string) {
	line = line[1:] // drop '@'
	sp := strings.IndexAny(line, " \t")
	if sp < 0 {
		return line, ""
	}
	return line[:sp], strings.TrimSpace(line[sp+1:])
}

// assignTagArgAndText splits a parameter-like tag's remainder into its
// argument token (e.g. the parameter or exception name for @param/@throws)
// and descriptive text; tags without a leading argument keep it empty.
func assignTagArgAndText(tag *arena.JavadocTag, rest string) {
	switch tag.Name {
	case "param", "throws", "exception":
		sp := strings.IndexAny(rest, " \t")
		if sp < 0 {
			tag.Arg = rest
			return
		}
		tag.Arg = rest[:sp]
		tag.Text = strings.TrimSpace(rest[sp+1:])
	default:
		tag.Text = rest
	}
}
