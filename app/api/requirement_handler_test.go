package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kritika0027/IDCC/store"
	"github.com/Kritika0027/IDCC/types"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStorer overrides just the methods a test exercises; calling anything
// else panics through the nil embedded interface.
type stubStorer struct {
	store.Storer

	createRequirement func(ctx context.Context, req types.Requirement) (*types.Requirement, error)
	getRequirement    func(ctx context.Context, id int64) (*types.Requirement, error)
	deleteRequirement func(ctx context.Context, id int64) (bool, error)
}

func (s *stubStorer) CreateRequirement(ctx context.Context, req types.Requirement) (*types.Requirement, error) {
	return s.createRequirement(ctx, req)
}

func (s *stubStorer) GetRequirement(ctx context.Context, id int64) (*types.Requirement, error) {
	return s.getRequirement(ctx, id)
}

func (s *stubStorer) DeleteRequirement(ctx context.Context, id int64) (bool, error) {
	return s.deleteRequirement(ctx, id)
}

func newTestApp(s store.Storer) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	handler := NewRequirementHandler(s)
	app.Post("/requirements", handler.HandleCreateRequirement)
	app.Get("/requirements/:id", handler.HandleGetRequirement)
	app.Delete("/requirements/:id", handler.HandleDeleteRequirement)
	return app
}

func TestHandleCreateRequirement(t *testing.T) {
	stub := &stubStorer{
		createRequirement: func(ctx context.Context, req types.Requirement) (*types.Requirement, error) {
			req.ID = 1
			return &req, nil
		},
	}
	app := newTestApp(stub)

	body := `{
		"project_name": "Portal",
		"business_owner": "Jane Doe",
		"title": "Vendor portal login",
		"description": "Deliver the vendor portal with login pages."
	}`
	request := httptest.NewRequest("POST", "/requirements", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created types.Requirement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, types.PriorityMedium, created.Priority)
	assert.Equal(t, types.StatusDraft, created.Status)
}

func TestHandleCreateRequirement_ValidationFailure(t *testing.T) {
	app := newTestApp(&stubStorer{})

	request := httptest.NewRequest("POST", "/requirements", strings.NewReader(`{"title": "x"}`))
	request.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(request)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ProjectName")
	assert.Contains(t, string(data), "failed on 'required' tag")
}

func TestHandleGetRequirement_NotFound(t *testing.T) {
	stub := &stubStorer{
		getRequirement: func(ctx context.Context, id int64) (*types.Requirement, error) {
			return nil, store.ErrNotFound
		},
	}
	app := newTestApp(stub)

	resp, err := app.Test(httptest.NewRequest("GET", "/requirements/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "requirement with 42 not found")
}

func TestHandleGetRequirement_InvalidID(t *testing.T) {
	app := newTestApp(&stubStorer{})

	resp, err := app.Test(httptest.NewRequest("GET", "/requirements/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDeleteRequirement(t *testing.T) {
	stub := &stubStorer{
		deleteRequirement: func(ctx context.Context, id int64) (bool, error) {
			return id == 1, nil
		},
	}
	app := newTestApp(stub)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/requirements/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/requirements/2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
