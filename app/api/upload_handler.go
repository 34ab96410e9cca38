package api

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kritika0027/IDCC/ingest"
	"github.com/Kritika0027/IDCC/store"
	"github.com/Kritika0027/IDCC/types"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UploadHandler struct {
	store     store.Storer
	cfg       ingest.Config
	extractor *ingest.Extractor
	ocr       *ingest.OCR
}

func NewUploadHandler(s store.Storer, cfg ingest.Config) *UploadHandler {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Printf("error creating upload directory %s: %v", cfg.UploadDir, err)
	}
	return &UploadHandler{
		store:     s,
		cfg:       cfg,
		extractor: ingest.NewExtractor(),
		ocr:       ingest.NewOCR(cfg),
	}
}

// HandleUploadDocument accepts a requirement document, extracts its text,
// maps detected sections into a draft and creates the requirement plus an
// attachment record. Extraction failure removes the saved file and creates
// nothing.
func (h *UploadHandler) HandleUploadDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ErrBadRequest()
	}

	projectName := c.FormValue("project_name")
	businessOwner := c.FormValue("business_owner")
	if errs := uploadFormErrors(projectName, businessOwner); len(errs) > 0 {
		return NewValidationError(errs)
	}

	// Unsupported extensions are rejected before any extraction attempt.
	if !ingest.IsSupportedDocument(fileHeader.Filename) {
		return NewError(fiber.StatusBadRequest,
			fmt.Sprintf("unsupported file type, allowed: %s", strings.Join(ingest.AllowedDocumentExtensions, ", ")))
	}
	if fileHeader.Size > h.cfg.MaxUploadSize {
		return NewError(fiber.StatusBadRequest, "file exceeds maximum upload size")
	}

	path := h.savePath(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, path); err != nil {
		return err
	}

	text, err := h.extractor.ExtractText(path)
	if err != nil {
		// No partial state: the upload artifact goes away with the error.
		if removeErr := os.Remove(path); removeErr != nil {
			log.Printf("error removing failed upload %s: %v", path, removeErr)
		}
		return NewError(fiber.StatusBadRequest, fmt.Sprintf("error parsing document: %v", err))
	}

	sections := ingest.DetectSections(text)
	draft := ingest.MapToDraft(sections, text, projectName, businessOwner)

	created, err := h.store.CreateRequirement(c.UserContext(), draftToRequirement(draft))
	if err != nil {
		return err
	}

	if _, err := h.store.CreateAttachment(c.UserContext(), types.Attachment{
		RequirementID:    created.ID,
		Filename:         fileHeader.Filename,
		FilePath:         path,
		FileType:         strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), "."),
		FileSize:         fileHeader.Size,
		MimeType:         fileHeader.Header.Get("Content-Type"),
		IsImage:          false,
		ProcessingStatus: ingest.StatusProcessed,
	}); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUploadImage accepts an image, runs OCR over it and creates a
// requirement from the recognized text. OCR failure is non-fatal: the
// requirement is created with a manual-review description.
func (h *UploadHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ErrBadRequest()
	}

	projectName := c.FormValue("project_name")
	businessOwner := c.FormValue("business_owner")
	if errs := uploadFormErrors(projectName, businessOwner); len(errs) > 0 {
		return NewValidationError(errs)
	}
	if fileHeader.Size > h.cfg.MaxUploadSize {
		return NewError(fiber.StatusBadRequest, "file exceeds maximum upload size")
	}

	path := h.savePath(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, path); err != nil {
		return err
	}

	if !ingest.IsImageFile(path) {
		if removeErr := os.Remove(path); removeErr != nil {
			log.Printf("error removing failed upload %s: %v", path, removeErr)
		}
		return NewError(fiber.StatusBadRequest, "file is not a valid image")
	}

	extractedText, status := h.ocr.ExtractTextFromImage(c.UserContext(), path)
	draft := ingest.DraftFromOCR(extractedText, status, projectName, businessOwner)

	created, err := h.store.CreateRequirement(c.UserContext(), draftToRequirement(draft))
	if err != nil {
		return err
	}

	if _, err := h.store.CreateAttachment(c.UserContext(), types.Attachment{
		RequirementID:    created.ID,
		Filename:         fileHeader.Filename,
		FilePath:         path,
		FileType:         strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), "."),
		FileSize:         fileHeader.Size,
		MimeType:         fileHeader.Header.Get("Content-Type"),
		IsImage:          true,
		ExtractedText:    extractedText,
		ProcessingStatus: status,
	}); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *UploadHandler) HandleGetAttachments(c *fiber.Ctx) error {
	requirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	attachments, err := h.store.ListAttachments(c.UserContext(), int64(requirementID))
	if err != nil {
		return err
	}
	return c.JSON(attachments)
}

func (h *UploadHandler) savePath(filename string) string {
	// Prefix with a random id so concurrent uploads of the same name never
	// clobber each other.
	return filepath.Join(h.cfg.UploadDir, uuid.New().String()+"_"+filepath.Base(filename))
}

func uploadFormErrors(projectName, businessOwner string) map[string]string {
	errs := make(map[string]string)
	if projectName == "" {
		errs["project_name"] = "failed on 'required' tag"
	}
	if businessOwner == "" {
		errs["business_owner"] = "failed on 'required' tag"
	}
	return errs
}

func draftToRequirement(draft ingest.Draft) types.Requirement {
	return types.Requirement{
		ProjectName:     draft.ProjectName,
		BusinessOwner:   draft.BusinessOwner,
		Title:           draft.Title,
		Description:     draft.Description,
		Priority:        types.PriorityMedium,
		Status:          types.StatusDraft,
		Constraints:     draft.Constraints,
		Dependencies:    draft.Dependencies,
		SuccessCriteria: draft.SuccessCriteria,
		Category:        draft.Category,
	}
}
