package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToDraft_UsesBusinessRequirementSection(t *testing.T) {
	sections := SectionMap{
		SectionBusinessRequirement: "Build a vendor portal with login.",
		SectionScope:               "Module A",
		SectionAssumptions:         "Vendors have email accounts",
		SectionConstraints:         "Budget capped at 50k",
		SectionDependencies:        "Billing team sign-off",
		SectionSuccessMetrics:      "Uptime above 99.9%",
	}

	draft := MapToDraft(sections, "raw text ignored", "Portal", "Jane Doe")

	assert.Equal(t, "Portal", draft.ProjectName)
	assert.Equal(t, "Jane Doe", draft.BusinessOwner)
	assert.True(t, strings.HasPrefix(draft.Description, "Build a vendor portal with login."))
	assert.Contains(t, draft.Description, "Scope:\nModule A")
	assert.Contains(t, draft.Description, "Assumptions:\nVendors have email accounts")
	assert.Equal(t, "Budget capped at 50k", draft.Constraints)
	assert.Equal(t, "Billing team sign-off", draft.Dependencies)
	assert.Equal(t, "Uptime above 99.9%", draft.SuccessCriteria)
	assert.Equal(t, CategoryDocumentImport, draft.Category)
}

func TestMapToDraft_TitleTruncatedTo100Runes(t *testing.T) {
	long := strings.Repeat("x", 150)
	draft := MapToDraft(SectionMap{SectionBusinessRequirement: long}, "", "p", "o")
	assert.Len(t, []rune(draft.Title), 100)
	assert.Equal(t, long, draft.Description)
}

func TestMapToDraft_FallsBackToRawText(t *testing.T) {
	raw := strings.Repeat("a", 600)
	draft := MapToDraft(SectionMap{}, raw, "p", "o")
	assert.Len(t, []rune(draft.Description), 500)
}

func TestMapToDraft_EmptyInputGetsDefaults(t *testing.T) {
	draft := MapToDraft(SectionMap{}, "", "p", "o")
	assert.Equal(t, "Untitled Requirement", draft.Title)
	assert.Equal(t, "No description provided", draft.Description)
}

func TestDraftFromOCR_WithText(t *testing.T) {
	draft := DraftFromOCR("Build a vendor portal", StatusProcessed, "Portal", "Jane Doe")
	assert.Equal(t, "Build a vendor portal", draft.Title)
	assert.Equal(t, "Extracted from image via OCR:\n\nBuild a vendor portal", draft.Description)
	assert.Equal(t, CategoryImageImport, draft.Category)
}

func TestDraftFromOCR_EmptyTextCarriesStatus(t *testing.T) {
	draft := DraftFromOCR("", StatusTesseractNotAvailable, "Portal", "Jane Doe")
	assert.Equal(t, "Requirement from Image", draft.Title)
	require.Contains(t, draft.Description, "OCR processing failed")
	assert.Contains(t, draft.Description, StatusTesseractNotAvailable)
	assert.Contains(t, draft.Description, "review the uploaded image manually")
}
