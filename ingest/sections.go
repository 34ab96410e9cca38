package ingest

import (
	"regexp"
	"strings"
)

// SectionKey is one of the fixed categories a document heading is
// classified into.
type SectionKey string

const (
	SectionBusinessRequirement SectionKey = "business_requirement"
	SectionScope               SectionKey = "scope"
	SectionOutOfScope          SectionKey = "out_of_scope"
	SectionAssumptions         SectionKey = "assumptions"
	SectionConstraints         SectionKey = "constraints"
	SectionDependencies        SectionKey = "dependencies"
	SectionSuccessMetrics      SectionKey = "success_metrics"
)

type SectionMap map[SectionKey]string

// sectionPatterns is an ordered table: for each line the keys are tried in
// declaration order and the first key with any matching pattern wins.
// Patterns are unanchored searches, so e.g. an "Out of Scope" heading is
// claimed by the earlier "scope" entry.
var sectionPatterns = []struct {
	key      SectionKey
	patterns []*regexp.Regexp
}{
	{SectionBusinessRequirement, compilePatterns(
		`business\s+requirement[s]?`,
		`requirement[s]?`,
		`overview`,
	)},
	{SectionScope, compilePatterns(
		`scope`,
		`in\s+scope`,
	)},
	{SectionOutOfScope, compilePatterns(
		`out\s+of\s+scope`,
		`exclusions?`,
	)},
	{SectionAssumptions, compilePatterns(
		`assumption[s]?`,
		`assumptions?\s+&?\s+risks?`,
	)},
	{SectionConstraints, compilePatterns(
		`constraint[s]?`,
		`limitations?`,
	)},
	{SectionDependencies, compilePatterns(
		`dependenc[ies]?`,
		`dependencies?`,
	)},
	{SectionSuccessMetrics, compilePatterns(
		`success\s+metric[s]?`,
		`success\s+criteria`,
		`kpi[s]?`,
		`measurement[s]?`,
	)},
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

// DetectSections splits document text into named sections by scanning for
// heading lines. A heading switches the current section and is not part of
// its body; body lines are trimmed and newline-joined. Text before the first
// recognized heading is discarded, and a repeated heading of the same kind
// overwrites the earlier capture. Text with no recognized headings yields an
// empty map; the caller is expected to fall back to the raw text.
func DetectSections(text string) SectionMap {
	sections := SectionMap{}

	var current SectionKey
	var content []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		detected := detectHeading(line)
		if detected != "" {
			if current != "" {
				sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
			}
			current = detected
			content = nil
			continue
		}

		if current != "" {
			content = append(content, line)
		}
	}

	if current != "" {
		sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
	}

	return sections
}

func detectHeading(line string) SectionKey {
	for _, entry := range sectionPatterns {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(line) {
				return entry.key
			}
		}
	}
	return ""
}
