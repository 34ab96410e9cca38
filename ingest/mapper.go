package ingest

import (
	"fmt"
	"strings"
)

const (
	CategoryDocumentImport = "document_import"
	CategoryImageImport    = "image_import"

	defaultTitle       = "Untitled Requirement"
	defaultDescription = "No description provided"
	imageDefaultTitle  = "Requirement from Image"

	maxTitleLen        = 100
	rawTextFallbackLen = 500
)

// Draft is the structured result of ingesting a document or image.
// It lives only between ingestion and requirement creation.
type Draft struct {
	ProjectName     string
	BusinessOwner   string
	Title           string
	Description     string
	Constraints     string
	Dependencies    string
	SuccessCriteria string
	Category        string
}

// MapToDraft combines detected sections into a requirement draft. When no
// business-requirement section was detected the first 500 characters of the
// raw extracted text serve as the description instead.
func MapToDraft(sections SectionMap, rawText, projectName, businessOwner string) Draft {
	description, ok := sections[SectionBusinessRequirement]
	if !ok {
		description = truncate(rawText, rawTextFallbackLen)
	}

	var parts []string
	if description != "" {
		parts = append(parts, description)
	}
	if scope, ok := sections[SectionScope]; ok && scope != "" {
		parts = append(parts, fmt.Sprintf("\n\nScope:\n%s", scope))
	}
	if assumptions, ok := sections[SectionAssumptions]; ok && assumptions != "" {
		parts = append(parts, fmt.Sprintf("\n\nAssumptions:\n%s", assumptions))
	}

	description = strings.Join(parts, "\n")
	title := truncate(description, maxTitleLen)
	if description == "" {
		description = defaultDescription
		title = defaultTitle
	}

	return Draft{
		ProjectName:     projectName,
		BusinessOwner:   businessOwner,
		Title:           title,
		Description:     description,
		Constraints:     sections[SectionConstraints],
		Dependencies:    sections[SectionDependencies],
		SuccessCriteria: sections[SectionSuccessMetrics],
		Category:        CategoryDocumentImport,
	}
}

// DraftFromOCR wraps OCR output into a requirement draft. An empty
// extraction is non-fatal: the draft carries a manual-review notice
// embedding the OCR status instead of a description.
func DraftFromOCR(extractedText, processingStatus, projectName, businessOwner string) Draft {
	draft := Draft{
		ProjectName:   projectName,
		BusinessOwner: businessOwner,
		Category:      CategoryImageImport,
	}

	if extractedText == "" {
		draft.Title = imageDefaultTitle
		draft.Description = fmt.Sprintf("[OCR processing failed: %s] Please review the uploaded image manually.", processingStatus)
		return draft
	}

	draft.Title = truncate(extractedText, maxTitleLen)
	draft.Description = "Extracted from image via OCR:\n\n" + extractedText
	return draft
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
